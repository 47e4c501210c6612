package cli

import (
	"fmt"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

// numbered keeps the 1-based position in the unfiltered list, which is what
// toggle, done and rm take.
type numbered struct {
	n int
	model.Todo
}

func statsLine(s model.Stats) string {
	t := ui.Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), s.Completed,
		t.Pending.Render(t.SymPending), s.Active,
		t.Accent.Render("Total"), s.Total,
	)
}

func listLines(todos []model.Todo, f model.Filter, group bool) []string {
	t := ui.Current()
	s := model.ComputeStats(todos)

	var shown []numbered
	for i, td := range todos {
		if f.Keep(td) {
			shown = append(shown, numbered{n: i + 1, Todo: td})
		}
	}

	lines := []string{
		statsLine(s),
		t.Muted.Render(ui.ProgressBar(s.Completed, s.Total, 28)),
		"",
	}
	switch {
	case len(shown) == 0 && f == model.FilterAll:
		lines = append(lines, t.Muted.Render("No tasks yet. Add a new task to get started!"))
	case len(shown) == 0:
		lines = append(lines, t.Muted.Render(fmt.Sprintf("No %s tasks found.", f)))
	case group:
		lines = append(lines, groupLines(shown)...)
	default:
		lines = append(lines, flatLines(shown)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add -p high \"Buy milk\"`"))
	return lines
}

func flatLines(items []numbered) []string {
	t := ui.Current()
	out := make([]string, 0, len(items))
	for _, it := range items {
		box, style := t.BoxUnchecked, t.Muted
		text := ui.Truncate(it.Text, 80)
		if it.Completed {
			box, style = t.BoxChecked, t.Success
			text = t.Done.Render(text)
		}
		line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", it.n)), style.Render(box), text)
		if badge := t.Badge(it.Priority); badge != "" {
			line += "  " + badge
		}
		out = append(out, line)
	}
	return out
}

func groupLines(items []numbered) []string {
	t := ui.Current()
	var pend, done []numbered
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
