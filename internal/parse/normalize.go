package parse

import (
	"strings"
	"unicode"
)

// punctuation mirrors the ASCII punctuation set used by SQuAD-style scorers.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RemoveArticles replaces each standalone lowercase "a", "an" and "the" with a
// single space. Surrounding whitespace is left as is, so callers usually follow
// with WhiteSpaceFix.
//
// Word boundaries are Unicode aware: the "a" in "café a" is removed but the one
// in "éa" is not.
func RemoveArticles(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	start := -1
	emit := func(word string) {
		switch word {
		case "a", "an", "the":
			b.WriteByte(' ')
		default:
			b.WriteString(word)
		}
	}
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			emit(text[start:i])
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		emit(text[start:])
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// WhiteSpaceFix collapses whitespace runs into single spaces and trims the ends.
func WhiteSpaceFix(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RemovePunc deletes every ASCII punctuation character.
func RemovePunc(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// NormalizeAnswer canonicalizes an answer for exact-match comparison: it
// lowercases, strips punctuation and articles, and collapses whitespace.
func NormalizeAnswer(text string) string {
	return WhiteSpaceFix(RemoveArticles(RemovePunc(strings.ToLower(text))))
}
