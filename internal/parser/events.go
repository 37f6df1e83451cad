package parser

import "strings"

// ExtractEvents flattens every event declaration in an events module.
// A non-comment line containing "event" opens a declaration, which closes
// on the first line containing ")".
func ExtractEvents(code string) ([]string, []int) {
	lines := strings.Split(code, "\n")

	var (
		events     []string
		firstLines []int
		buf        []string
		firstLine  int
	)

	for i, line := range lines {
		comment := isComment(line)
		if strings.Contains(line, "event") && !comment {
			buf = []string{line}
			firstLine = i + 1
		} else if len(buf) > 0 && !comment {
			buf = append(buf, line)
		}

		if len(buf) > 0 && strings.Contains(line, ")") {
			events = append(events, flatten(buf))
			firstLines = append(firstLines, firstLine)
			buf = nil
		}
	}

	return events, firstLines
}
