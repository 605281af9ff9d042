package ijson

// LexemeType identifies the kind of a Lexeme, per spec.md §3.
type LexemeType byte

const (
	LexemePunct LexemeType = iota
	LexemeString
	LexemeNumber
	LexemeTrue
	LexemeFalse
	LexemeNull
)

func (t LexemeType) String() string {
	switch t {
	case LexemePunct:
		return "punctuation"
	case LexemeString:
		return "string"
	case LexemeNumber:
		return "number"
	case LexemeTrue:
		return "true"
	case LexemeFalse:
		return "false"
	case LexemeNull:
		return "null"
	}
	panic("ijson: unknown lexeme type")
}

// Lexeme is a single JSON lexical token: punctuation, a string literal
// (quotes included, undecoded), a number literal (raw digits), or a
// keyword. Bytes is only valid until the next call into the producing
// Lexer; callers that need to retain it must copy it.
type Lexeme struct {
	Type  LexemeType
	Bytes []byte
}

// Punct returns the single punctuation byte carried by the lexeme. It
// panics if Type is not LexemePunct.
func (l Lexeme) Punct() byte {
	if l.Type != LexemePunct {
		panic("ijson: Punct called on non-punctuation lexeme")
	}
	return l.Bytes[0]
}
