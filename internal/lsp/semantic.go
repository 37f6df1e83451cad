package lsp

import (
	"sort"
	"strings"

	"connlint/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// NatSpec tags highlighted inside comments
var natSpecTags = []string{"@title", "@dev", "@notice", "@param"}

// collectSemanticTokens highlights what the linter reads: NatSpec tags and
// documented parameter names in comments, function names, and the event
// name of every `_eventName = "..."` assignment.
func collectSemanticTokens(code string) []SemanticToken {
	var tokens []SemanticToken

	for i, line := range strings.Split(code, "\n") {
		var lineTokens []SemanticToken
		if isCommentLine(line) {
			lineTokens = walkComment(i, line)
		} else {
			lineTokens = append(walkFunction(i, line), walkEventName(i, line)...)
		}

		sort.Slice(lineTokens, func(a, b int) bool {
			return lineTokens[a].StartChar < lineTokens[b].StartChar
		})
		tokens = append(tokens, lineTokens...)
	}

	return tokens
}

func walkComment(line int, text string) []SemanticToken {
	var tokens []SemanticToken

	for _, tag := range natSpecTags {
		offset := 0
		for {
			idx := strings.Index(text[offset:], tag)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(tag)
			offset = end

			// @dev must not match the head of a longer word
			if end < len(text) && isIdentChar(text[end]) {
				continue
			}
			tokens = append(tokens, makeToken(line, start, tag, "keyword", 0)...)

			if tag == "@param" {
				if name, at := nextWord(text, end); name != "" {
					tokens = append(tokens, makeToken(line, at, name, "parameter", 0)...)
				}
			}
		}
	}

	return tokens
}

func walkFunction(line int, text string) []SemanticToken {
	idx := strings.Index(text, "function ")
	if idx < 0 {
		return nil
	}
	name, at := nextWord(text, idx+len("function"))
	return makeToken(line, at, name, "function", 1)
}

func walkEventName(line int, text string) []SemanticToken {
	sig, ok := parser.LoggedEvent(text)
	if !ok {
		return nil
	}
	name, _, _ := strings.Cut(sig, "(")
	at := strings.Index(text, `"`+sig)
	if at < 0 {
		return nil
	}
	return makeToken(line, at+1, name, "event", 0)
}

// nextWord returns the identifier following position from, and its offset
func nextWord(text string, from int) (string, int) {
	start := from
	for start < len(text) && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	end := start
	for end < len(text) && isIdentChar(text[end]) {
		end++
	}
	return text[start:end], start
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isCommentLine(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "*")
}

// makeToken creates a semantic token for a 0-based line and column
func makeToken(line, column int, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(line),
		StartChar:      uint32(column),
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// encodeSemanticTokens packs tokens into the LSP wire format
// (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
