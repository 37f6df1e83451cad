package abi

// Declaration is one `event Name(...) [anonymous];` statement
type Declaration struct {
	Name      string       `"event" @Ident "("`
	Params    []*Parameter `[ @@ { "," @@ } ] ")"`
	Anonymous bool         `[ @"anonymous" ] [ ";" ]`
}

type Parameter struct {
	Type    *TypeName `@@`
	Indexed bool      `[ @"indexed" ]`
	Name    string    `[ @Ident ]`
}

// TypeName is an elementary or user type with optional array suffixes,
// e.g. `uint256[2][]` or `IERC20.Token`.
type TypeName struct {
	Path   []string `@Ident { "." @Ident }`
	Arrays []*Array `@@*`
}

type Array struct {
	Size string `"[" [ @Integer ] "]"`
}
