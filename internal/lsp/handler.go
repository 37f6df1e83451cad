package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"connlint/internal/ast"
	lintErrors "connlint/internal/errors"
	"connlint/internal/linter"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("connlint.lsp")

// Define the set of supported semantic token types advertised in the legend
var SemanticTokenTypes = []string{
	"keyword",
	"parameter",
	"function",
	"event",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// ConnectorHandler implements the LSP server handlers. Every edit of a
// file inside a connector directory re-lints the whole connector, using
// unsaved editor buffers in place of the files on disk.
type ConnectorHandler struct {
	mu         sync.RWMutex
	content    map[string]string
	published  map[string][]string        // connector dir -> files last published to
	closure    map[string]map[string]bool // connector dir -> files read by its last lint
	packageDir string
	forbidden  []string
}

// NewConnectorHandler creates a handler resolving "@" imports below
// packageDir and rejecting the given forbidden patterns
func NewConnectorHandler(packageDir string, forbidden []string) *ConnectorHandler {
	return &ConnectorHandler{
		content:    make(map[string]string),
		published:  make(map[string][]string),
		closure:    make(map[string]map[string]bool),
		packageDir: packageDir,
		forbidden:  forbidden,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *ConnectorHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
				Save:      true,
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *ConnectorHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("connlint LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *ConnectorHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("connlint LSP shutdown")
	return nil
}

func (h *ConnectorHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	log.Debugf("trace set to %s", params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *ConnectorHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.content[path] = params.TextDocument.Text
	h.mu.Unlock()

	return h.lintAndPublish(ctx, path)
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised, so the last change holds the text.
func (h *ConnectorHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.setContent(path, c.Text)
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				h.setContent(path, c.Text)
			}
		}
	}

	return h.lintAndPublish(ctx, path)
}

// TextDocumentDidSave handles file save notifications from the editor
func (h *ConnectorHandler) TextDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	log.Debugf("saved file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	if params.Text != nil {
		h.setContent(path, *params.Text)
	}

	return h.lintAndPublish(ctx, path)
}

// TextDocumentDidClose drops the editor buffer and re-lints from disk
func (h *ConnectorHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()

	return h.lintAndPublish(ctx, path)
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *ConnectorHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	content, err := h.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(string(content))),
	}, nil
}

// Connectors returns the connector directories whose lint depends on path:
// its own directory when it holds an entry module, plus every connector
// whose last lint read it through an import. Files no connector reads
// yield nothing, leaving their published diagnostics untouched.
func (h *ConnectorHandler) Connectors(path string) []string {
	path = filepath.Clean(path)
	seen := make(map[string]bool)

	dir := filepath.Dir(path)
	if _, err := h.readFile(filepath.Join(dir, ast.EntryFile)); err == nil {
		seen[dir] = true
	}

	h.mu.RLock()
	for connector, files := range h.closure {
		if files[path] {
			seen[connector] = true
		}
	}
	h.mu.RUnlock()

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Lint returns the diagnostics of the connector rooted at dir, keyed by
// file. The entry and events modules are always present so stale findings
// get cleared.
func (h *ConnectorHandler) Lint(dir string) map[string][]protocol.Diagnostic {
	mainPath := filepath.Join(dir, ast.EntryFile)

	read := make(map[string]bool)
	reader := func(path string) ([]byte, error) {
		read[filepath.Clean(path)] = true
		return h.readFile(path)
	}

	rep, err := linter.New(h.packageDir, h.forbidden).WithReader(reader).Lint(dir)

	h.mu.Lock()
	h.closure[dir] = read
	h.mu.Unlock()

	if err != nil {
		log.Warningf("lint of %s aborted: %s", dir, err)
		return map[string][]protocol.Diagnostic{
			mainPath: {fatalDiagnostic(err)},
			filepath.Join(dir, ast.EventsFile): {},
		}
	}

	all := append(append([]lintErrors.Diagnostic{}, rep.Errors...), rep.Warnings...)
	byPath := ConvertDiagnostics(all, h.lines)
	for _, name := range []string{ast.EntryFile, ast.EventsFile} {
		file := filepath.Join(dir, name)
		if _, ok := byPath[file]; !ok {
			byPath[file] = []protocol.Diagnostic{}
		}
	}
	return byPath
}

func (h *ConnectorHandler) lintAndPublish(ctx *glsp.Context, path string) error {
	dirs := h.Connectors(path)
	if len(dirs) == 0 {
		log.Debugf("%s is not read by any connector", path)
		return nil
	}

	// Connectors sharing an imported file each contribute their findings
	merged := make(map[string][]protocol.Diagnostic)
	for _, dir := range dirs {
		byPath := h.Lint(dir)

		// Files that had findings last time but none now must be cleared
		h.mu.Lock()
		for _, file := range h.published[dir] {
			if _, ok := byPath[file]; !ok {
				byPath[file] = []protocol.Diagnostic{}
			}
		}
		files := make([]string, 0, len(byPath))
		for file, diags := range byPath {
			files = append(files, file)
			merged[file] = append(merged[file], diags...)
			if merged[file] == nil {
				merged[file] = []protocol.Diagnostic{}
			}
		}
		sort.Strings(files)
		h.published[dir] = files
		h.mu.Unlock()
	}

	files := make([]string, 0, len(merged))
	for file := range merged {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		sendDiagnosticNotification(ctx, pathToURI(file), merged[file])
	}
	return nil
}

func (h *ConnectorHandler) setContent(path, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[path] = text
}

// readFile prefers the editor buffer over the file on disk
func (h *ConnectorHandler) readFile(path string) ([]byte, error) {
	h.mu.RLock()
	content, ok := h.content[filepath.Clean(path)]
	h.mu.RUnlock()
	if ok {
		return []byte(content), nil
	}
	return os.ReadFile(path)
}

func (h *ConnectorHandler) lines(path string) []string {
	content, err := h.readFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(string(content), "\n")
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.Clean(filepath.FromSlash(path)), nil
}

func pathToURI(path string) protocol.DocumentUri {
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
