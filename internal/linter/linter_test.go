package linter

import (
	"os"
	"path/filepath"
	"testing"

	"connlint/internal/imports"
	"connlint/internal/tree"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mainnetRoot = "../../testdata/contracts/mainnet/connectors"
	polygonRoot = "../../testdata/contracts/polygon/connectors"
	basicDir    = mainnetRoot + "/basic"
	quickDir    = polygonRoot + "/quickswap"
)

func TestLintBasicConnector(t *testing.T) {
	rep, err := New("node_modules", nil).Lint(basicDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"arguments amount don't match for LogWithdraw at " + basicDir + "/main.sol:32",
		"argument amt has no @param for function withdraw at " + basicDir + "/main.sol:31",
		"public function withdraw is not payable at " + basicDir + "/main.sol:31",
		"public function version is not payable at " + basicDir + "/main.sol:40",
	}, rep.ErrorMessages())
	assert.Equal(t, []string{
		"LogUnused event(s) not used at " + basicDir + "/main.sol",
	}, rep.WarningMessages())
}

func TestLintFollowsImports(t *testing.T) {
	rep, err := New("node_modules", nil).Lint(quickDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"found 'selfdestruct' in ../../testdata/contracts/mainnet/common/basic.sol:5",
	}, rep.ErrorMessages())
	assert.Equal(t, []string{
		"missing events file for " + quickDir + "/main.sol",
	}, rep.WarningMessages())
}

func TestRunAggregatesRoots(t *testing.T) {
	rep, err := New("node_modules", nil).Run(mainnetRoot, polygonRoot)
	require.NoError(t, err)

	assert.True(t, rep.Failed())
	assert.Len(t, rep.Errors, 5)
	assert.Len(t, rep.Warnings, 2)
	assert.Contains(t, rep.ErrorMessages()[4], "found 'selfdestruct'")
}

func TestRunIsIdempotent(t *testing.T) {
	l := New("node_modules", nil)

	first, err := l.Run(mainnetRoot, polygonRoot)
	require.NoError(t, err)
	second, err := l.Run(mainnetRoot, polygonRoot)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunCustomForbidden(t *testing.T) {
	rep, err := New("node_modules", []string{"abi.encode"}).Run(polygonRoot)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"found 'abi.encode' in " + quickDir + "/main.sol:19",
	}, rep.ErrorMessages())
}

func TestRunMissingRoot(t *testing.T) {
	_, err := New("node_modules", nil).Run(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, tree.ErrMissingRoot)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(dedent.Dedent(content)), 0o644))
	}
	return root
}

func TestRunAbortsOnMissingImport(t *testing.T) {
	root := writeTree(t, map[string]string{
		"connectors/a/main.sol": `
			import "./missing.sol";
			contract A {}
		`,
	})

	_, err := New("node_modules", nil).Run(filepath.Join(root, "connectors"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunAbortsOnImportCycle(t *testing.T) {
	root := writeTree(t, map[string]string{
		"connectors/a/main.sol": `
			import "./helpers.sol";
			contract A {}
		`,
		"connectors/a/helpers.sol": `
			import "./main.sol";
		`,
	})

	_, err := New("node_modules", nil).Run(filepath.Join(root, "connectors"))
	assert.ErrorIs(t, err, imports.ErrImportCycle)
}

func TestPackageImports(t *testing.T) {
	root := writeTree(t, map[string]string{
		"connectors/a/main.sol": `
			import "@org/lib/Token.sol";
		`,
		"node_modules/@org/lib/Token.sol": `
			contract Token {
			    function burn() internal { selfdestruct(payable(0)); }
			}
		`,
	})

	rep, err := New(filepath.Join(root, "node_modules"), nil).Lint(filepath.Join(root, "connectors", "a"))
	require.NoError(t, err)
	require.NotEmpty(t, rep.Errors)
	assert.Equal(t,
		"found 'selfdestruct' in "+filepath.Join(root, "node_modules", "@org", "lib", "Token.sol")+":3",
		rep.Errors[0].Message)
}

func TestWithReaderOverlay(t *testing.T) {
	overlay := map[string]string{
		basicDir + "/events.sol": "contract Events {\n    event LogDeposit(address indexed token, uint256 amt);\n    event LogWithdraw(address indexed token);\n}\n",
	}
	read := func(path string) ([]byte, error) {
		if content, ok := overlay[path]; ok {
			return []byte(content), nil
		}
		return os.ReadFile(path)
	}

	rep, err := New("node_modules", nil).WithReader(read).Lint(basicDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"argument amt has no @param for function withdraw at " + basicDir + "/main.sol:31",
		"public function withdraw is not payable at " + basicDir + "/main.sol:31",
		"public function version is not payable at " + basicDir + "/main.sol:40",
	}, rep.ErrorMessages())
	assert.Empty(t, rep.Warnings)
}

func TestRunFollowsMultiLineImport(t *testing.T) {
	root := writeTree(t, map[string]string{
		"connectors/a/main.sol": `
			import {
			    Basic
			} from "../../common/basic.sol";
			contract ConnectV2A is Basic {}
		`,
		"common/basic.sol": `
			contract Basic {
			    function kill() internal { selfdestruct(payable(0)); }
			}
		`,
	})

	rep, err := New("node_modules", nil).Run(filepath.Join(root, "connectors"))
	require.NoError(t, err)
	assert.Contains(t, rep.ErrorMessages(),
		"found 'selfdestruct' in "+filepath.Join(root, "common", "basic.sol")+":3")
}
