package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectType       Code = 2004
	SynExpectExpression Code = 2005
	SynUnclosedParen    Code = 2006
	SynUnclosedBrace    Code = 2007
	SynExpectColon      Code = 2008
	SynExpectArrow      Code = 2009

	// Semantic (type resolution)
	SemaUnknownName     Code = 3001
	SemaUnknownType     Code = 3002
	SemaDuplicateSymbol Code = 3003
	SemaUnknownMember   Code = 3004
	SemaNotCallable     Code = 3005
	SemaNoOverload      Code = 3006
	SemaBadTypeArgs     Code = 3007

	// Lint rules
	LintUnusedReturn     Code = 4001
	LintReturnToVoid     Code = 4002
	LintNotAUnion        Code = 4003
	LintNotAClass        Code = 4004
	LintUnnecessaryCheck Code = 4005
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",

	SynUnexpectedToken:  "Unexpected token",
	SynExpectSemicolon:  "Expected ';'",
	SynExpectIdentifier: "Expected identifier",
	SynExpectType:       "Expected type",
	SynExpectExpression: "Expected expression",
	SynUnclosedParen:    "Unclosed '('",
	SynUnclosedBrace:    "Unclosed '{'",
	SynExpectColon:      "Expected ':'",
	SynExpectArrow:      "Expected '=>'",

	SemaUnknownName:     "Unknown name",
	SemaUnknownType:     "Unknown type",
	SemaDuplicateSymbol: "Duplicate declaration",
	SemaUnknownMember:   "Unknown member",
	SemaNotCallable:     "Expression is not callable",
	SemaNoOverload:      "No overload matches this call",
	SemaBadTypeArgs:     "Wrong number of type arguments",

	LintUnusedReturn:     "Return value is ignored",
	LintReturnToVoid:     "Callback returns a value where void is expected",
	LintNotAUnion:        "Left side of instanceof must be a union",
	LintNotAClass:        "Right side of instanceof must be a class",
	LintUnnecessaryCheck: "Redundant instanceof check",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LNT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
