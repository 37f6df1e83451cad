package main

import (
	"fmt"
	"strings"

	"connlint/internal/errors"
)

type ExplainCommand struct {
	Code string `arg:"" help:"Diagnostic code, e.g. L0021."`
}

func (r *ExplainCommand) Run(app *App) error {
	code := strings.ToUpper(r.Code)
	description := errors.GetErrorDescription(code)
	if description == errors.GetErrorDescription("") {
		return fmt.Errorf("unknown diagnostic code %s", r.Code)
	}

	fmt.Fprintf(app.Stdout, "%s (%s): %s\n", code, errors.GetErrorCategory(code), description)
	return nil
}
