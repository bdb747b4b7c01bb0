package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/exitcode"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, args, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintHelp(os.Stdout)
			os.Exit(exitcode.Success)
		}
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(exitcode.Usage)
	}

	ids, err := jsonstore.ParseIDStrategy(cfg.IDs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(exitcode.Usage)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("options", "config", cfg.Path, "theme", cfg.Theme, "color", cfg.Color, "ids", ids, "output", cfg.Output)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(args, cli.Options{
		Group:  cfg.Group,
		Output: cfg.Output,
		IDs:    ids,
		UI:     ui.Options{Theme: cfg.Theme, Color: cfg.Color},
		Logger: logger,
	})
	os.Exit(code)
}
