package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"connlint/internal/abi"
	"connlint/internal/ast"
	"connlint/internal/parser"
	"connlint/internal/tree"

	"github.com/ddddddO/gtree"
)

type EventsCommand struct {
	Roots []string `arg:"" optional:"" help:"Connector roots; replaces the configured roots." type:"path"`
}

func (r *EventsCommand) Run(app *App) error {
	roots := app.Config.Roots
	if len(r.Roots) > 0 {
		roots = r.Roots
	}

	dirs, err := tree.Walk(roots...)
	if err != nil {
		return err
	}

	root := gtree.NewRoot("connectors")
	for _, dir := range dirs {
		if err := addConnector(root, dir); err != nil {
			return err
		}
	}

	if err := gtree.OutputFromRoot(app.Stdout, root); err != nil {
		return fmt.Errorf("failed to render events tree: %w", err)
	}
	return nil
}

func addConnector(root *gtree.Node, dir string) error {
	node := root.Add(dir)

	code, err := os.ReadFile(filepath.Join(dir, ast.EventsFile))
	if errors.Is(err, os.ErrNotExist) {
		node.Add("(no " + ast.EventsFile + ")")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read events of %s: %w", dir, err)
	}

	decls, lines := parser.ExtractEvents(string(code))
	for i, decl := range decls {
		node.Add(describeEvent(decl, lines[i]))
	}
	return nil
}

// describeEvent renders `Sig topic0`, or the reason the declaration has none
func describeEvent(decl string, line int) string {
	ev, err := abi.ParseEvent(decl)
	if err != nil {
		return fmt.Sprintf("line %d: %s", line, err)
	}
	topic, err := ev.Topic()
	if err != nil {
		return fmt.Sprintf("%s: %s", ev.Signature(), err)
	}
	return ev.Signature() + " " + topic.Hex()
}
