// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"connlint/internal/config"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("connlint")

// errLintFailed makes the process exit 1 without printing anything beyond the report
var errLintFailed = errors.New("lint failed")

type Command struct {
	Verbose int    `help:"Increase log verbosity (repeatable)." short:"v" type:"counter"`
	Config  string `help:"Path to the configuration file (default ./connlint.yml when present)." type:"path"`

	Check   CheckCommand   `cmd:"" default:"withargs" help:"Lint every connector below the roots."`
	Events  EventsCommand  `cmd:"" help:"Show the declared events of every connector with their topic0."`
	Explain ExplainCommand `cmd:"" help:"Describe a diagnostic code."`
}

// App carries what every subcommand needs
type App struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("connlint"),
		kong.Description("Static policy checks for DSA connector sources"),
		kong.UsageOnError(),
	)

	commonlog.Configure(command.Verbose, nil)

	cfg, err := loadConfig(command.Config)
	ctx.FatalIfErrorf(err)

	startTime := time.Now()
	err = ctx.Run(&App{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	log.Infof("finished in %s", formatDuration(time.Since(startTime)))

	if errors.Is(err, errLintFailed) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadOptional(config.FileName)
	}
	return config.Load(path)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
