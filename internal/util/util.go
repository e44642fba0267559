// Package util holds small text and file helpers shared by the CLI and the explorer.
package util

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9_]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// WriteFile writes data to path with 0o644 permissions, creating missing
// parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes cuts text to maxRunes runes and appends an ellipsis when
// anything was removed.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes < 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return string([]rune(text)[:maxRunes]) + "…"
}

// WrapToWidth wraps each line of text at word boundaries so no line exceeds
// width runes. Words longer than width are split. Blank lines are kept.
func WrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	var (
		wrapped []string
		cur     []rune
	)
	for _, word := range strings.Fields(line) {
		runes := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(runes) > width {
			wrapped = append(wrapped, string(cur))
			cur = nil
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		for len(runes) > width {
			wrapped = append(wrapped, string(runes[:width]))
			runes = runes[width:]
		}
		cur = append(cur, runes...)
	}
	if len(cur) > 0 || len(wrapped) == 0 {
		wrapped = append(wrapped, string(cur))
	}
	return wrapped
}

// Slugify lowercases s and replaces every run of characters outside
// [a-z0-9_] with a single dash. Colons become underscores.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "_")
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}

// BoolToInt converts a boolean to an integer (1 for true, 0 for false).
func BoolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
