package abi

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var parser = participle.MustBuild[Declaration](
	participle.Lexer(EventLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Event is a parsed event declaration with canonical parameter types
type Event struct {
	Name      string
	Inputs    []Input
	Anonymous bool
}

type Input struct {
	Name    string
	Type    string
	Indexed bool
}

// ParseEvent parses a single flattened event declaration such as
// `event LogDeposit(address indexed token, uint256 amt);`.
func ParseEvent(decl string) (*Event, error) {
	d, err := parser.ParseString("", strings.TrimSpace(decl))
	if err != nil {
		return nil, fmt.Errorf("failed to parse event declaration: %w", err)
	}

	ev := &Event{Name: d.Name, Anonymous: d.Anonymous}
	for _, p := range d.Params {
		ev.Inputs = append(ev.Inputs, Input{
			Name:    p.Name,
			Type:    p.Type.Canonical(),
			Indexed: p.Indexed,
		})
	}
	return ev, nil
}

// Canonical renders the type the way it appears in a signature.
// The integer aliases uint and int widen to 256 bits.
func (t *TypeName) Canonical() string {
	base := strings.Join(t.Path, ".")
	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	case "byte":
		base = "bytes1"
	}

	var b strings.Builder
	b.WriteString(base)
	for _, a := range t.Arrays {
		b.WriteString("[" + a.Size + "]")
	}
	return b.String()
}

// Signature returns the canonical signature, e.g. `Transfer(address,address,uint256)`
func (e *Event) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		types[i] = in.Type
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

// Topic returns topic0 of the event, the keccak256 hash of its signature.
// Every parameter type must be a valid ABI type; user-defined types are
// rejected since their encoding is not knowable from the declaration alone.
func (e *Event) Topic() (common.Hash, error) {
	for _, in := range e.Inputs {
		if _, err := gethabi.NewType(in.Type, "", nil); err != nil {
			return common.Hash{}, fmt.Errorf("event %s: invalid type %q: %w", e.Name, in.Type, err)
		}
	}
	return common.BytesToHash(crypto.Keccak256([]byte(e.Signature()))), nil
}
