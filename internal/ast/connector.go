package ast

import (
	"strings"
)

const (
	// EntryFile is the file that marks a directory as a connector.
	EntryFile = "main.sol"
	// EventsFile is the optional sibling declaring the connector's events.
	EventsFile = "events.sol"
)

// Function is a function body sliced out of an entry module.
// Raw holds the body flattened onto a single line.
type Function struct {
	Raw       string
	Comments  []string // decorator lines above the function, nearest first
	FirstLine int      // 1-based line of the "function" keyword
	Name      string
	Args      []string // only populated for logging candidates
}

// Connector is a single unit under lint, identified by its directory.
type Connector struct {
	Path string
	Code string

	HasEventsFile    bool
	EventsCode       string
	Events           []string
	EventsFirstLines []int

	MainEvents      []string
	MainEventsLines []int

	Funcs          []Function
	AllPublicFuncs []Function
}

// NewConnector creates a connector rooted at dir
func NewConnector(dir string) *Connector {
	return &Connector{Path: dir}
}

// MainPath is the entry module path as it appears in messages.
func (c *Connector) MainPath() string {
	return c.Path + "/" + EntryFile
}

// EventsPath is the events module path as it appears in messages.
func (c *Connector) EventsPath() string {
	return c.Path + "/" + EventsFile
}

// EventName returns the declared name of an event declaration,
// the second whitespace-delimited token before the opening paren.
func EventName(decl string) string {
	head, _, _ := strings.Cut(decl, "(")
	fields := strings.Fields(head)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// SignatureName returns the name part of an invoked signature like "Foo(address,uint256)".
func SignatureName(sig string) string {
	name, _, _ := strings.Cut(sig, "(")
	return name
}

// ParenArgs splits the text between the first "(" and the next ")" on commas.
// Empty parens yield a single empty argument, the same as the declaration side,
// so both sides of a comparison stay symmetric.
func ParenArgs(s string) []string {
	_, rest, ok := strings.Cut(s, "(")
	if !ok {
		return nil
	}
	inner, _, _ := strings.Cut(rest, ")")
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args
}

// ArgType returns the leading type token of a declared argument such as "address indexed from".
func ArgType(arg string) string {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ArgName returns the trailing name token of a declared argument such as "uint256 amt".
func ArgName(arg string) string {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
