package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cilansSlodhi/todo-list/internal/api"
	"github.com/cilansSlodhi/todo-list/internal/cli"
	"github.com/cilansSlodhi/todo-list/internal/config"
	"github.com/cilansSlodhi/todo-list/internal/logging"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = cli.PrintHelp
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)

	args := cfg.Args
	if len(args) == 0 {
		args = []string{"ui"}
	}

	// The TUI owns the terminal, so its logs go to log_file or nowhere.
	var fallback io.Writer = os.Stderr
	if args[0] == "ui" {
		fallback = io.Discard
	}
	logger, closer, err := logging.Open(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}, fallback)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closer.Close()
	if cfg.ConfigFile != "" {
		logger.Debug("config loaded", "file", cfg.ConfigFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := api.New(cfg.APIURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithToken(cfg.Token),
		api.WithLogger(logger),
	)

	code := cli.Run(ctx, args, cli.Options{Config: cfg, Logger: logger, Remote: client})
	if code != 0 {
		fmt.Fprintln(ui.Stderr)
	}
	return code
}
