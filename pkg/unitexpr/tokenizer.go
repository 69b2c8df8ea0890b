package unitexpr

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Number pattern: optional grouping commas, optional decimal point, optional
// scientific exponent. A match ending in a comma is shrunk by one so that
// "1,000, " keeps its boundary comma.
var numberPattern = regexp.MustCompile(`^(?:[0-9,]+)?\.?(?:e-?)?(?:[0-9]+)?`)

// Literal pattern: everything that is not a digit, whitespace or a bracket.
// Operators embedded after the first character stay inside the literal,
// which is how compound spellings like "GB/s" lex as one token.
var literalPattern = regexp.MustCompile(`^[^\d\s()\[\]{}]+`)

type tokenEntry struct {
	lit string
	tok Token
}

var doubleCharTokens = []tokenEntry{
	{"->", OperatorToken(OpConvert)},
	{"<=", OperatorToken(OpLessThanOrEqual)},
	{">=", OperatorToken(OpGreaterThanOrEqual)},
	{"!=", OperatorToken(OpNotEqual)},
	{"~=", OperatorToken(OpApproxEqual)},
	{"==", OperatorToken(OpDoubleEqual)},
}

var singleCharTokens = []tokenEntry{
	{",", Token{Kind: KindComma}},
	{"(", Token{Kind: KindStartGrouping}},
	{")", Token{Kind: KindEndGrouping}},
	{"[", Token{Kind: KindStartGrouping}},
	{"]", Token{Kind: KindEndGrouping}},
	{"{", Token{Kind: KindStartGrouping}},
	{"}", Token{Kind: KindEndGrouping}},
	{"+", OperatorToken(OpPlus)},
	{"-", OperatorToken(OpMinus)},
	{"=", OperatorToken(OpEqual)},
	{"<", OperatorToken(OpLessThan)},
	{">", OperatorToken(OpGreaterThan)},
	{"*", OperatorToken(OpMultiply)},
	{"/", OperatorToken(OpDivide)},
	{"%", OperatorToken(OpPercent)},
	{"^", OperatorToken(OpCaret)},
}

// Tokenizer converts an input string into a positioned token sequence.
// Tokenization is total: no input raises an error, and a suffix that cannot
// advance the cursor simply ends the scan.
type Tokenizer struct {
	factory  *Factory
	input    string
	pos      int
	compiled []RangedToken
	done     bool
}

// NewTokenizer builds a tokenizer over input. Constant identifiers resolve
// through the factory's constant registry.
func NewTokenizer(input string, factory *Factory) *Tokenizer {
	return &Tokenizer{factory: factory, input: input}
}

// Tokenize scans the whole input and returns the positioned tokens. Repeated
// calls return the same result.
func (t *Tokenizer) Tokenize() []RangedToken {
	if t.done {
		return t.compiled
	}
	t.done = true

	for t.pos < len(t.input) {
		if t.whitespace() || t.table(doubleCharTokens) || t.table(singleCharTokens) ||
			t.number() || t.literal() {
			continue
		}
		break
	}
	return t.compiled
}

// Tokens returns the tokens without their ranges.
func (t *Tokenizer) Tokens() []Token {
	compiled := t.Tokenize()
	tokens := make([]Token, len(compiled))
	for i, rt := range compiled {
		tokens[i] = rt.Token
	}
	return tokens
}

func (t *Tokenizer) emit(length int, tok Token) {
	t.compiled = append(t.compiled, RangedToken{Start: t.pos, End: t.pos + length, Token: tok})
	t.pos += length
}

func (t *Tokenizer) remaining() string {
	return t.input[t.pos:]
}

func (t *Tokenizer) whitespace() bool {
	if strings.HasPrefix(t.remaining(), " ") {
		t.emit(1, Token{Kind: KindWhitespace})
		return true
	}
	return false
}

func (t *Tokenizer) table(entries []tokenEntry) bool {
	rest := t.remaining()
	for _, entry := range entries {
		if strings.HasPrefix(rest, entry.lit) {
			t.emit(len(entry.lit), entry.tok)
			return true
		}
	}
	return false
}

func (t *Tokenizer) number() bool {
	match := numberPattern.FindString(t.remaining())
	end := len(match)
	if end == 0 {
		return false
	}

	// A trailing comma belongs to the surrounding syntax, not the number.
	if match[end-1] == ',' {
		end--
		match = match[:end]
		if end == 0 {
			return false
		}
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		// A bare "." or "e" slips through the pattern; let the literal rule
		// have it.
		return false
	}

	t.emit(end, NumberToken(value))
	return true
}

func (t *Tokenizer) literal() bool {
	match := literalPattern.FindString(t.remaining())
	if match == "" {
		return false
	}

	if value, ok := t.factory.Constant(match); ok {
		t.emit(len(match), NumberToken(value))
	} else {
		t.emit(len(match), LiteralToken(match))
	}
	return true
}
