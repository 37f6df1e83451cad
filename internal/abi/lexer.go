package abi

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var EventLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Punctuation", Pattern: `[()\[\],;.]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
