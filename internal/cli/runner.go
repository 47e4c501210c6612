// Package cli dispatches the todo subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/cilansSlodhi/todo-list/internal/api"
	"github.com/cilansSlodhi/todo-list/internal/config"
	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/todolist"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

// Remote is the REST service as the subcommands see it. *api.Client
// implements it.
type Remote interface {
	todolist.Source
	Update(ctx context.Context, id string, req api.UpdateRequest) (model.Todo, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// Options carry what the root command resolved before dispatch.
type Options struct {
	Config *config.Config
	Logger *log.Logger
	Remote Remote
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand opens the interactive list.
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Config == nil {
		opt.Config = &config.Config{Mode: config.DefaultMode, APIURL: config.DefaultAPIURL}
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	if len(args) == 0 {
		args = []string{"ui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ui":
		return doUI(ctx, opt)
	case "devserver":
		return doDevserver(ctx, opt)
	}

	if opt.Remote == nil {
		ui.Fail(cmd + ": no backend configured")
		return 1
	}
	if opt.Config.Mode == config.ModeMemory {
		ui.Fail(cmd + ": the in-memory list only exists inside `todo ui`")
		return 2
	}

	switch cmd {
	case "ls":
		return doList(ctx, opt, a)
	case "add":
		return doAdd(ctx, opt, a)
	case "toggle", "done", "rm":
		if len(a) != 1 {
			ui.Fail(fmt.Sprintf("usage: todo %s <index>", cmd))
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		return doIndexed(ctx, opt, cmd, n)
	case "clear":
		return doClear(ctx, opt)
	case "stats":
		return doStats(ctx, opt)
	case "export":
		if len(a) != 1 {
			ui.Fail("usage: todo export <file>")
			return 2
		}
		return doExport(ctx, opt, a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `todo - a todo list client

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                      Open the interactive list (default)
  ls [-filter f]          List todos (f: all, active, completed)
  add [-p prio] <text...> Add a todo (prio: low, medium, high)
  toggle <index>          Flip completion of the todo at 1-based index
  done <index>            Mark the todo at 1-based index completed
  rm <index>              Remove the todo at 1-based index
  clear                   Remove every completed todo
  stats                   Show total, active and completed counts
  export <file>           Write the backend's todos as a seed file
  devserver               Serve an in-memory REST backend

Flags:
  -api url        REST endpoint (default http://localhost:5000/api/todos)
  -memory         Keep todos in memory only (ui)
  -demo           Start the in-memory list with sample todos
  -theme name     classic, neon or mono
  -log-level lvl  debug, info, warn or error
  -config path    Config file (todo.toml or todo.yaml)
  -group          Group ls output by pending/done

Examples:
  todo add -p high "Buy milk"
  todo ls -filter active
  todo done 2
  todo -memory -demo
`)
}

// failRemote reports a backend error with a hint when it looks like the
// service is down or refusing us.
func failRemote(opt Options, err error) int {
	ui.Fail(err.Error())
	var se *api.StatusError
	switch {
	case errors.As(err, &se):
		opt.Logger.Debug("backend refused request", "op", se.Op, "status", se.StatusCode)
	case errors.Is(err, api.ErrMalformed), errors.Is(err, api.ErrNoData):
	default:
		ui.Hint(fmt.Sprintf("Hint: is the backend running at %s? Try `todo devserver`.", opt.Config.APIURL))
	}
	return 1
}
