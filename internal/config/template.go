package config

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template expands `{{ env.NAME || fallback }}` placeholders. Alternatives
// are tried left to right; env lookups that are unset or empty fall
// through, any other alternative is used literally or, when it parses as
// JSON, as its YAML rendering.
func Template(bytes []byte) ([]byte, error) {
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * check each alternative
		for _, part := range strings.Split(content, "||") {
			part = strings.TrimSpace(part)
			if key, ok := strings.CutPrefix(part, "env."); ok {
				if value := os.Getenv(key); value != "" {
					return []byte(value)
				}
				continue
			}
			if part == "" {
				continue
			}
			value, err := Nested(part)
			if err != nil {
				return []byte(part)
			}
			return []byte(value)
		}

		// * no valid value found, return empty
		return []byte("")
	})

	return processed, nil
}

// Nested renders a JSON value as flow-style YAML so it can be inlined
func Nested(value string) (string, error) {
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	node := new(yaml.Node)
	if err := node.Encode(result); err != nil {
		return "", err
	}
	node.Style = yaml.FlowStyle

	bytes, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(bytes), "\n"), nil
}
