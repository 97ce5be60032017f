package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"blogsummarizer/internal/domain/lexicon"
)

// LexicalTranslator rewrites text word by word through a Lexicon. Word order,
// inflection and idioms are left alone.
type LexicalTranslator struct {
	lexicon *lexicon.Lexicon
}

func NewLexicalTranslator(lex *lexicon.Lexicon) *LexicalTranslator {
	return &LexicalTranslator{lexicon: lex}
}

// Translate substitutes every token whose a-z key is in the lexicon and passes
// all other tokens through byte for byte. An empty mapping drops the word but
// keeps the delimiters around it.
func (t *LexicalTranslator) Translate(text string) string {
	// A Caser carries state, so each call gets its own.
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range Tokenize(text) {
		key := lookupKey(lower, tok)
		if key == "" {
			b.WriteString(tok)
			continue
		}
		if repl, ok := t.lexicon.Lookup(key); ok {
			b.WriteString(repl)
			continue
		}
		b.WriteString(tok)
	}
	return b.String()
}

// Tokenize splits text at word boundaries. A word is a run of ASCII letters,
// digits and '_'; every other run of bytes is a delimiter token. Concatenating
// the tokens yields text again.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	tokens := make([]string, 0, len(text)/3+1)
	start := 0
	inWord := isWordByte(text[0])
	for i := 1; i < len(text); i++ {
		w := isWordByte(text[i])
		if w != inWord {
			tokens = append(tokens, text[start:i])
			start = i
			inWord = w
		}
	}
	return append(tokens, text[start:])
}

func lookupKey(lower cases.Caser, tok string) string {
	folded := lower.String(tok)
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, folded)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
