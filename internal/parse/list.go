package parse

import (
	"regexp"
	"strings"
)

// listItemRegex matches a line opening with "N." or "N)" followed by a
// separator, so decimals such as "3.5" do not start an item.
var listItemRegex = regexp.MustCompile(`^\d+[.)](?:\s+(.*))?$`)

// ParseList splits numbered-list text into its items.
//
// Items start on lines prefixed with "N." or "N)" and run until the next
// prefixed line or the end of input. Unprefixed lines inside an item are
// joined onto it with a space and blank lines are skipped. Anything before the
// first numbered line is ignored. Trailing periods, commas and whitespace are
// stripped from each item, and items left empty are dropped.
func ParseList(text string) []string {
	items := make([]string, 0)
	var current []string
	open := false

	flush := func() {
		item := strings.Join(current, " ")
		if item = strings.TrimSpace(strings.TrimRight(item, ".,")); item != "" {
			items = append(items, item)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if m := listItemRegex.FindStringSubmatch(line); m != nil {
			if open {
				flush()
			}
			open = true
			if body := strings.TrimSpace(m[1]); body != "" {
				current = append(current, body)
			}
			continue
		}
		if open && line != "" {
			current = append(current, line)
		}
	}
	if open {
		flush()
	}
	return items
}

// ParseNumberedList parses lists such as "1) Paris.\n2) Rome,". It shares
// ParseList's grammar, trailing punctuation handling included.
func ParseNumberedList(text string) []string {
	return ParseList(text)
}
