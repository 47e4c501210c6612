package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/cilansSlodhi/todo-list/internal/api"
	"github.com/cilansSlodhi/todo-list/internal/config"
	"github.com/cilansSlodhi/todo-list/internal/devserver"
	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/store/jsonstore"
	"github.com/cilansSlodhi/todo-list/internal/todolist"
	"github.com/cilansSlodhi/todo-list/internal/tui"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

func subFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(ui.Stderr)
	return fs
}

func doUI(ctx context.Context, opt Options) int {
	tuiOpts := tui.Options{Logger: opt.Logger, Endpoint: opt.Config.APIURL}
	if opt.Config.Mode == config.ModeMemory {
		seed, err := loadSeed(opt.Config)
		if err != nil {
			ui.Fail("seed: " + err.Error())
			return 1
		}
		tuiOpts.Seed = seed
	} else {
		if opt.Remote == nil {
			ui.Fail("ui: no backend configured")
			return 1
		}
		tuiOpts.Source = opt.Remote
	}
	if err := tui.Run(ctx, tuiOpts); err != nil && !errors.Is(err, context.Canceled) {
		ui.Fail("ui: " + err.Error())
		return 1
	}
	return 0
}

// loadSeed picks the in-memory start state: a seed file wins over -demo.
func loadSeed(cfg *config.Config) ([]model.Todo, error) {
	switch {
	case cfg.SeedFile != "":
		return jsonstore.Load(cfg.SeedFile)
	case cfg.Demo:
		return todolist.Samples(), nil
	}
	return nil, nil
}

func doDevserver(ctx context.Context, opt Options) int {
	logger, err := devserver.NewLogger(opt.Config.DevserverLogLevel(), opt.Config.LogFormat != "json")
	if err != nil {
		ui.Fail("devserver: " + err.Error())
		return 1
	}
	defer func() { _ = logger.Sync() }()

	seed, err := loadSeed(opt.Config)
	if err != nil {
		ui.Fail("seed: " + err.Error())
		return 1
	}
	srv := devserver.New(logger, devserver.Options{
		Addr:  opt.Config.DevserverAddr,
		Token: opt.Config.Token,
		Seed:  seed,
	})

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()
	ui.OK(fmt.Sprintf("serving %s%s", opt.Config.DevserverAddr, devserver.DefaultPrefix))

	select {
	case err := <-errc:
		if err != nil {
			ui.Fail("devserver: " + err.Error())
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		ui.Fail("devserver shutdown: " + err.Error())
		return 1
	}
	return 0
}

func doList(ctx context.Context, opt Options, args []string) int {
	fs := subFlags("ls")
	filter := fs.String("filter", string(model.FilterAll), "all, active or completed")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	f, err := model.ParseFilter(*filter)
	if err != nil {
		ui.Fail("ls: " + err.Error())
		return 2
	}

	todos, err := opt.Remote.FetchAll(ctx)
	if err != nil {
		return failRemote(opt, err)
	}
	fmt.Fprintln(ui.Stdout, ui.PanelLines(listLines(todos, f, opt.Config.Group)))
	return 0
}

func doAdd(ctx context.Context, opt Options, args []string) int {
	fs := subFlags("add")
	prio := fs.String("p", string(model.DefaultPriority), "priority: low, medium or high")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		ui.Fail("usage: todo add [-p priority] <text...>")
		return 2
	}
	p, err := model.ParsePriority(*prio)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}

	td, err := opt.Remote.Create(ctx, text, p)
	if err != nil {
		return failRemote(opt, err)
	}
	opt.Logger.Debug("created", "id", td.ID)
	ui.OK("added " + quote(td.Text))
	return 0
}

// doIndexed resolves a 1-based `ls` index then toggles, completes or removes.
func doIndexed(ctx context.Context, opt Options, cmd string, n int) int {
	todos, err := opt.Remote.FetchAll(ctx)
	if err != nil {
		return failRemote(opt, err)
	}
	td, err := todolist.Nth(todos, n)
	if err != nil {
		ui.Fail(err.Error())
		ui.Hint("Hint: run `todo ls` to see valid indexes")
		return 2
	}

	switch cmd {
	case "toggle":
		td, err = opt.Remote.Toggle(ctx, td.ID)
		if err == nil {
			ui.OK(fmt.Sprintf("toggled %s (%s)", quote(td.Text), state(td)))
		}
	case "done":
		completed := true
		td, err = opt.Remote.Update(ctx, td.ID, api.UpdateRequest{Completed: &completed})
		if err == nil {
			ui.OK("completed " + quote(td.Text))
		}
	case "rm":
		err = opt.Remote.Delete(ctx, td.ID)
		if err == nil {
			ui.OK("removed " + quote(td.Text))
		}
	}
	if err != nil {
		return failRemote(opt, err)
	}
	return 0
}

func doClear(ctx context.Context, opt Options) int {
	n, err := opt.Remote.DeleteCompleted(ctx)
	if err != nil {
		return failRemote(opt, err)
	}
	ui.OK(fmt.Sprintf("cleared %d completed %s", n, plural(n, "todo")))
	return 0
}

func doStats(ctx context.Context, opt Options) int {
	s, err := opt.Remote.Stats(ctx)
	if err != nil {
		return failRemote(opt, err)
	}
	t := ui.Current()
	fmt.Fprintln(ui.Stdout, ui.PanelLines([]string{
		statsLine(s),
		t.Muted.Render(ui.ProgressBar(s.Completed, s.Total, 28)),
	}))
	return 0
}

func doExport(ctx context.Context, opt Options, path string) int {
	todos, err := opt.Remote.FetchAll(ctx)
	if err != nil {
		return failRemote(opt, err)
	}
	if err := jsonstore.Save(path, todos); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("exported %d %s to %s", len(todos), plural(len(todos), "todo"), path))
	return 0
}

func quote(s string) string { return "\"" + s + "\"" }

func state(td model.Todo) string {
	if td.Completed {
		return "done"
	}
	return "pending"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
