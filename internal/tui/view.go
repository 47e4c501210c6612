package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

func (m Model) View() string {
	sections := []string{m.headerView(), "", m.form.View(), ""}
	if b := m.bannerView(); b != "" {
		sections = append(sections, b)
	}
	sections = append(sections, m.bodyView(), m.footerView())
	return ui.Panel(strings.Join(sections, "\n"))
}

// layout sizes the list widget to the body area.
func (m *Model) layout() {
	// everything but the body, plus panel borders and blank separators
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.form.View()) + lipgloss.Height(m.footerView()) + 6
	if b := m.bannerView(); b != "" {
		chrome += lipgloss.Height(b)
	}
	idx := m.view.Index()
	m.view.SetSize(max(m.width-4, 20), max(m.height-chrome, 3))
	if len(m.view.Items()) > 0 {
		m.view.Select(idx)
	}
}

func (m Model) bannerView() string {
	if m.banner == "" {
		return ""
	}
	t := ui.Current()
	return t.Error.Render("✖ "+m.banner) + t.Muted.Render("  (esc to dismiss)")
}

func (m Model) headerView() string {
	t := ui.Current()
	s := m.list.Stats()

	title := t.Title.Render("Todo List") + "  " + t.Muted.Render("Organize your tasks and boost your productivity")
	counts := fmt.Sprintf("%s %d Total   %s %d Active   %s %d Done",
		t.Accent.Render("≡"), s.Total,
		t.Pending.Render(t.SymPending), s.Active,
		t.Success.Render(t.SymDone), s.Completed,
	)
	progress := t.Muted.Render(ui.ProgressBar(s.Completed, s.Total, 28))

	var tabs []string
	for _, f := range model.Filters {
		label := " " + f.Label() + " "
		if f == m.list.Filter() {
			tabs = append(tabs, t.Selected.Render(label))
		} else {
			tabs = append(tabs, t.Muted.Render(label))
		}
	}

	lines := []string{title, counts + "   " + progress, strings.Join(tabs, " ")}
	if s.Completed > 0 {
		lines = append(lines, t.Error.Render(fmt.Sprintf("c: Clear %d completed %s", s.Completed, plural(s.Completed, "task"))))
	}
	if m.loading {
		lines = append(lines, m.spin.View()+" "+t.Muted.Render("Loading todos..."))
	}
	return strings.Join(lines, "\n")
}

func (m Model) bodyView() string {
	t := ui.Current()
	switch {
	case m.loadErr != "":
		return t.Error.Render(m.loadErr) + "\n" + t.Muted.Render("Press r to retry.")
	case !m.loaded:
		return t.Muted.Render("Loading todos...")
	case len(m.view.Items()) == 0:
		return emptyState(m.list.Filter())
	}
	return m.view.View()
}

// emptyState is shown instead of rows when the filtered view is empty.
func emptyState(f model.Filter) string {
	t := ui.Current()
	if f == model.FilterAll {
		return t.Title.Render("No tasks yet") + "\n" + t.Muted.Render("Add a new task to get started!")
	}
	return t.Title.Render("No tasks "+string(f)) + "\n" + t.Muted.Render(fmt.Sprintf("No %s tasks found.", f))
}

func (m Model) footerView() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, ui.Current().Muted.Render(m.status))
	}
	if m.form.Focused() {
		parts = append(parts, m.help.View(formHelp{m.keys}))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return strings.Join(parts, "\n")
}
