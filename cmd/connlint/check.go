package main

import (
	"connlint/internal/errors"
	"connlint/internal/linter"
)

type CheckCommand struct {
	Roots       []string `arg:"" optional:"" help:"Connector roots; replaces the configured roots." type:"path"`
	PackageDir  string   `help:"Directory that '@' imports resolve against." type:"path"`
	FailOnError bool     `help:"Exit with status 1 when any error is found."`
	Format      string   `help:"Report format." enum:"text,json" default:"text"`
	Pretty      bool     `help:"Also render every finding with its source frame on stderr."`
}

func (r *CheckCommand) Run(app *App) error {
	roots := app.Config.Roots
	if len(r.Roots) > 0 {
		roots = r.Roots
	}
	packageDir := app.Config.PackageDir
	if r.PackageDir != "" {
		packageDir = r.PackageDir
	}

	rep, err := linter.New(packageDir, app.Config.Forbidden).Run(roots...)
	if err != nil {
		return err
	}

	switch r.Format {
	case "json":
		if err := rep.WriteJSON(app.Stdout); err != nil {
			return err
		}
	default:
		rep.WriteText(app.Stdout, app.Stderr)
	}

	if r.Pretty {
		rep.WritePretty(app.Stderr, errors.NewErrorReporter())
	}

	if (r.FailOnError || app.Config.FailOnError) && rep.Failed() {
		return errLintFailed
	}
	return nil
}
