package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RemoveName removes the first whole-token occurrence of name from text,
// together with one adjacent space, and trims the result.
//
// The token may be followed by sentence punctuation, which is kept, except
// that a speaker colon goes with the name: "John: hello" becomes "hello".
func RemoveName(text, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return strings.TrimSpace(text)
	}

	for offset := 0; offset <= len(text)-len(name); {
		idx := strings.Index(text[offset:], name)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(name)
		if tokenBoundaryBefore(text, start) && tokenBoundaryAfter(text, end) {
			if end < len(text) && text[end] == ':' {
				end++
			}
			switch {
			case end < len(text) && text[end] == ' ':
				end++
			case start > 0 && text[start-1] == ' ':
				start--
			}
			return strings.TrimSpace(text[:start] + text[end:])
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return strings.TrimSpace(text)
}

func tokenBoundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsSpace(r)
}

func tokenBoundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r) || strings.ContainsRune(":,.;!?", r)
}

// RemoveNewline trims a step and deletes its internal line breaks. Words on
// either side of a break are joined without a space.
func RemoveNewline(step string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(strings.TrimSpace(step))
}
