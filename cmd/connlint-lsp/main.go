// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"connlint/internal/config"
	"connlint/internal/lsp"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "connlint" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
	log     = commonlog.GetLogger("connlint.lsp")
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	cfg, err := config.LoadOptional(config.FileName)
	if err != nil {
		log.Errorf("failed to load %s: %s", config.FileName, err)
		os.Exit(1)
	}

	connectorHandler := lsp.NewConnectorHandler(cfg.PackageDir, cfg.Forbidden)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     connectorHandler.Initialize,
		Initialized:                    connectorHandler.Initialized,
		Shutdown:                       connectorHandler.Shutdown,
		SetTrace:                       connectorHandler.SetTrace,
		TextDocumentDidOpen:            connectorHandler.TextDocumentDidOpen,
		TextDocumentDidChange:          connectorHandler.TextDocumentDidChange,
		TextDocumentDidSave:            connectorHandler.TextDocumentDidSave,
		TextDocumentDidClose:           connectorHandler.TextDocumentDidClose,
		TextDocumentSemanticTokensFull: connectorHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting connlint LSP server %s", version)

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running connlint LSP server: %s", err)
		os.Exit(1)
	}
}
