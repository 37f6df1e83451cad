package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"connlint/internal/errors"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func sample() *Report {
	r := New()
	r.Add(
		[]errors.Diagnostic{errors.ForbiddenPattern("selfdestruct", "a/main.sol", 3)},
		[]errors.Diagnostic{errors.MissingEventsFile("a/main.sol")},
	)
	r.Add(
		[]errors.Diagnostic{errors.MissingName("b/main.sol")},
		nil,
	)
	return r
}

func TestAddKeepsOrder(t *testing.T) {
	r := sample()

	assert.True(t, r.Failed())
	assert.Equal(t, []string{
		"found 'selfdestruct' in a/main.sol:3",
		"name variable missing in b/main.sol",
	}, r.ErrorMessages())
	assert.Equal(t, []string{"missing events file for a/main.sol"}, r.WarningMessages())
}

func TestMerge(t *testing.T) {
	r := New()
	r.Merge(sample())
	r.Merge(New())

	assert.Len(t, r.Errors, 2)
	assert.Len(t, r.Warnings, 1)
}

func TestEmptyReportPasses(t *testing.T) {
	r := New()
	r.Add(nil, []errors.Diagnostic{errors.MissingEventsFile("a/main.sol")})

	assert.False(t, r.Failed(), "warnings never fail a run")
}

func TestWriteText(t *testing.T) {
	var out, errOut bytes.Buffer
	sample().WriteText(&out, &errOut)

	assert.Equal(t, "Total errors: 2\nTotal warnings: 1\n", out.String())
	assert.Equal(t,
		"found 'selfdestruct' in a/main.sol:3\nname variable missing in b/main.sol\n"+
			"missing events file for a/main.sol\n",
		errOut.String())
}

func TestWriteTextEmpty(t *testing.T) {
	var out, errOut bytes.Buffer
	New().WriteText(&out, &errOut)

	assert.Equal(t, "Total errors: 0\nTotal warnings: 0\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, sample().WriteJSON(&out))

	var decoded struct {
		Errors []struct {
			Level   string `json:"level"`
			Code    string `json:"code"`
			Message string `json:"message"`
			Path    string `json:"path"`
			Line    int    `json:"line"`
		} `json:"errors"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	require.Len(t, decoded.Errors, 2)
	assert.Equal(t, "error", decoded.Errors[0].Level)
	assert.Equal(t, errors.ErrorForbiddenPattern, decoded.Errors[0].Code)
	assert.Equal(t, "a/main.sol", decoded.Errors[0].Path)
	assert.Equal(t, 3, decoded.Errors[0].Line)
	assert.Len(t, decoded.Warnings, 1)
}

func TestWriteJSONEmptyLists(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New().WriteJSON(&out))

	assert.JSONEq(t, `{"errors": [], "warnings": []}`, out.String())
}

func TestWritePretty(t *testing.T) {
	reporter := errors.NewErrorReporterWithReader(func(string) ([]byte, error) {
		return []byte("contract A {\n  function f() {\n    selfdestruct(x);\n  }\n}\n"), nil
	})

	var errOut bytes.Buffer
	sample().WritePretty(&errOut, reporter)

	assert.Contains(t, errOut.String(), "error[L0001]: found 'selfdestruct' in a/main.sol:3")
	assert.Contains(t, errOut.String(), "selfdestruct(x);")
	assert.Contains(t, errOut.String(), "warning[W0002]: missing events file for a/main.sol")
}
