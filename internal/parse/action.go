package parse

import (
	"regexp"
	"strings"
)

var actionRegex = regexp.MustCompile(`^([\p{L}\p{N}_]+)\[(.+)\]$`)

// ParseAction splits an action string of the form "Type[Argument]".
//
// The whole input must be a single action: a word-character type immediately
// followed by a non-empty bracketed argument. Anything else yields ("", "").
// The argument match is greedy, so "Search[a[b]]" yields ("Search", "a[b]").
// One trailing newline is tolerated so raw model lines parse as-is.
func ParseAction(text string) (string, string) {
	m := actionRegex.FindStringSubmatch(strings.TrimSuffix(text, "\n"))
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
