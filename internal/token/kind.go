package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota
	// Invalid marks a token the lexer could not classify.
	Invalid
	// Ident represents an identifier.
	Ident

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConstructor represents the 'constructor' keyword.
	KwConstructor // constructor
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwInstanceof represents the 'instanceof' operator keyword.
	KwInstanceof // instanceof
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' literal keyword.
	KwUndefined // undefined

	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a string literal.
	StringLit

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// Bang represents '!'.
	Bang
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Pipe represents '|' in union type syntax.
	Pipe
	// Question represents '?'.
	Question
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// DotDotDot represents '...' (rest parameter).
	DotDotDot
	// FatArrow represents '=>'.
	FatArrow
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var kindNames = [...]string{
	EOF:           "EOF",
	Invalid:       "invalid",
	Ident:         "ident",
	KwLet:         "let",
	KwFunction:    "function",
	KwClass:       "class",
	KwConstructor: "constructor",
	KwReturn:      "return",
	KwInstanceof:  "instanceof",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	KwUndefined:   "undefined",
	NumberLit:     "number",
	StringLit:     "string",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	EqEq:          "==",
	BangEq:        "!=",
	Bang:          "!",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	AndAnd:        "&&",
	OrOr:          "||",
	Pipe:          "|",
	Question:      "?",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	DotDotDot:     "...",
	FatArrow:      "=>",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}
