package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"typelint/internal/diag"
	"typelint/internal/lexer"
	"typelint/internal/source"
	"typelint/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tl", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, reporter), reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence, EOF excluded.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_x", token.Ident, "_x"},
		{"$tmp", token.Ident, "$tmp"},
		{"camelCase99", token.Ident, "camelCase99"},
		{"lets", token.Ident, "lets"},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, tt.kind, tt.text)
	}
}

func TestIdentifiers_NonASCII_NFC(t *testing.T) {
	// "e" followed by a combining acute accent normalizes to the
	// precomposed form, so both spellings yield the same token text.
	composed := "café"
	decomposed := "café"

	lx1, _ := makeTestLexer(composed)
	lx2, _ := makeTestLexer(decomposed)
	tok1 := lx1.Next()
	tok2 := lx2.Next()

	if tok1.Kind != token.Ident || tok2.Kind != token.Ident {
		t.Fatalf("expected identifiers, got %v and %v", tok1.Kind, tok2.Kind)
	}
	if tok1.Text != tok2.Text {
		t.Errorf("NFC normalization mismatch: %q vs %q", tok1.Text, tok2.Text)
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"let", token.KwLet},
		{"function", token.KwFunction},
		{"class", token.KwClass},
		{"constructor", token.KwConstructor},
		{"return", token.KwReturn},
		{"instanceof", token.KwInstanceof},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
		{"undefined", token.KwUndefined},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, tt.kind, tt.input)
	}
}

func TestKeywords_CapitalizedAreIdents(t *testing.T) {
	for _, input := range []string{"Let", "FUNCTION", "Class", "Return"} {
		expectSingleToken(t, input, token.Ident, input)
	}
}

func TestNumbers(t *testing.T) {
	expectSingleToken(t, "0", token.NumberLit, "0")
	expectSingleToken(t, "42", token.NumberLit, "42")
	expectSingleToken(t, "3.14", token.NumberLit, "3.14")
}

func TestNumbers_TrailingDotIsMemberAccess(t *testing.T) {
	expectTokens(t, "1.toString", []token.Kind{token.NumberLit, token.Dot, token.Ident})
}

func TestNumbers_Malformed(t *testing.T) {
	lx, reporter := makeTestLexer("1x")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected invalid token for %q, got %v", "1x", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected a malformed-number diagnostic")
	}
	if reporter.diagnostics[0].Code != diag.LexBadNumber {
		t.Errorf("expected LEX1003, got %s", reporter.diagnostics[0].Code.ID())
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `'hi'`, token.StringLit, `'hi'`)
	expectSingleToken(t, `"a \" b"`, token.StringLit, `"a \" b"`)
}

func TestStrings_Unterminated(t *testing.T) {
	for _, input := range []string{`"open`, "'open\nnext"} {
		lx, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("input %q: expected invalid token, got %v", input, tok.Kind)
		}
		if !reporter.HasErrors() {
			t.Errorf("input %q: expected an unterminated-string diagnostic", input)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"=", token.Assign},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"!", token.Bang},
		{"<", token.Lt},
		{"<=", token.LtEq},
		{">", token.Gt},
		{">=", token.GtEq},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"|", token.Pipe},
		{"=>", token.FatArrow},
		{"...", token.DotDotDot},
		{".", token.Dot},
		{":", token.Colon},
		{";", token.Semicolon},
		{",", token.Comma},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, tt.kind, tt.input)
	}
}

func TestOperators_LongestMatch(t *testing.T) {
	expectTokens(t, "a==b", []token.Kind{token.Ident, token.EqEq, token.Ident})
	expectTokens(t, "x=>y", []token.Kind{token.Ident, token.FatArrow, token.Ident})
	expectTokens(t, "a|b|c", []token.Kind{token.Ident, token.Pipe, token.Ident, token.Pipe, token.Ident})
}

func TestComments_Skipped(t *testing.T) {
	expectTokens(t, "let // trailing\nx", []token.Kind{token.KwLet, token.Ident})
	expectTokens(t, "let /* block\nspanning */ x", []token.Kind{token.KwLet, token.Ident})
	expectTokens(t, "/* unclosed", []token.Kind{})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("@")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected invalid token, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected an unknown-character diagnostic")
	}
}

func TestTokenize_Statement(t *testing.T) {
	tokens := lexer.Tokenize(mustFile(t, "let xs: Array<number> = makeList();"), &testReporter{})
	expected := []token.Kind{
		token.KwLet, token.Ident, token.Colon, token.Ident,
		token.Lt, token.Ident, token.Gt, token.Assign,
		token.Ident, token.LParen, token.RParen, token.Semicolon,
		token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("let x")
	if got := lx.Peek().Kind; got != token.KwLet {
		t.Fatalf("Peek: expected let, got %v", got)
	}
	if got := lx.Next().Kind; got != token.KwLet {
		t.Fatalf("Next after Peek: expected let, got %v", got)
	}
	if got := lx.Next().Kind; got != token.Ident {
		t.Fatalf("second Next: expected ident, got %v", got)
	}
}

func TestEOF_Sticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if got := lx.Next().Kind; got != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v", i, got)
		}
	}
}

func mustFile(t *testing.T, input string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.tl", []byte(input)))
}
