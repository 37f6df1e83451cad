package parser

import "strings"

type commentKind int

const (
	noComment commentKind = iota
	lineComment
	blockComment
)

// Comments collects the comment run ending right above lines[index].
// The run is either consecutive "//" lines or one block comment closed by
// "*/". Fragments are returned nearest line first with slashes or asterisks
// stripped; callers only test membership, never position.
func Comments(lines []string, index int) []string {
	var (
		comments []string
		kind     = noComment
	)

	if index > len(lines) {
		index = len(lines)
	}

	for i := index - 1; i >= 0; i-- {
		s := strings.TrimSpace(lines[i])

		if kind == noComment {
			switch {
			case strings.HasPrefix(s, "//"):
				kind = lineComment
			case strings.HasPrefix(s, "/*") && strings.HasSuffix(s, "*/"):
				if text := stripBlock(s); text != "" {
					return []string{text}
				}
				return nil
			case strings.HasSuffix(s, "*/"):
				kind = blockComment
			default:
				return nil
			}
		}

		switch kind {
		case lineComment:
			if !strings.HasPrefix(s, "//") {
				return comments
			}
			comments = append(comments, strings.TrimSpace(strings.ReplaceAll(s, "/", "")))
		case blockComment:
			opening := strings.HasPrefix(s, "/*")
			if text := stripBlock(s); text != "" {
				comments = append(comments, text)
			}
			if opening {
				return comments
			}
		}
	}

	return comments
}

func stripBlock(s string) string {
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimSuffix(s, "/")
	return strings.TrimSpace(strings.ReplaceAll(s, "*", ""))
}
