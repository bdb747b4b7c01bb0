// Package tui is an interactive list over one todo file.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

type mode int

const (
	browsing mode = iota
	addingTitle
	addingDescription
	editing
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	task model.Task
}

func (i listItem) FilterValue() string { return i.task.Title }

// itemDelegate renders each task on a single line.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Accent.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.TaskLine(d.theme, it.task))
}

// Model is the Bubble Tea model. The store is the source of truth; the list
// is rebuilt from it after every change.
type Model struct {
	store   *jsonstore.Store
	list    list.Model
	theme   ui.Theme
	r       *lipgloss.Renderer
	changed bool

	mode         mode
	ti           textinput.Model
	pendingTitle string
	editID       int
	inputErr     string
}

// New builds a model over st.
func New(st *jsonstore.Store, theme ui.Theme, r *lipgloss.Renderer) Model {
	l := list.New(nil, itemDelegate{theme: theme}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.SetStatusBarItemName("todo", "todos")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done/undone"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	removeBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, removeBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, removeBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store: st,
		list:  l,
		theme: theme,
		r:     r,
		ti:    ti,
	}
	m.refresh()
	return m
}

// Changed reports whether the store was modified.
func (m Model) Changed() bool { return m.changed }

// Store returns the underlying store.
func (m Model) Store() *jsonstore.Store { return m.store }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		height := ws.Height - 4
		if m.mode != browsing {
			height = ws.Height - 6
		}
		m.list.SetSize(ws.Width-4, height)
		return m, nil
	}

	if m.mode != browsing {
		return m.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if t, ok := m.selected(); ok {
				if t.Done {
					m.store.MarkUndone(t.ID)
				} else {
					m.store.MarkDone(t.ID)
				}
				m.changed = true
				return m, m.refresh()
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.store.Remove(t.ID)
				m.changed = true
				return m, m.refresh()
			}
			return m, nil
		case "a":
			m.mode = addingTitle
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "Title..."
			return m, m.ti.Focus()
		case "e":
			if t, ok := m.selected(); ok {
				m.mode = editing
				m.inputErr = ""
				m.editID = t.ID
				m.ti.SetValue(t.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Title..."
				return m, m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			return m.submit()
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.ti.Value())
	switch m.mode {
	case addingTitle:
		if value == "" {
			m.inputErr = "Title cannot be empty"
			return m, nil
		}
		m.pendingTitle = value
		m.mode = addingDescription
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "Description..."
		return m, nil
	case addingDescription:
		m.store.Add(m.pendingTitle, value)
		m.changed = true
		m.closeInput()
		cmd := m.refresh()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd
	case editing:
		if value == "" {
			m.inputErr = "Title cannot be empty"
			return m, nil
		}
		if t, ok := m.store.GetMut(m.editID); ok && t.Title != value {
			t.Title = value
			m.changed = true
		}
		m.closeInput()
		return m, m.refresh()
	}
	return m, nil
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.pendingTitle = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

// refresh rebuilds list items and the header from the store.
func (m *Model) refresh() tea.Cmd {
	tasks := m.store.All()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, listItem{task: t})
	}
	idx := m.list.Index()
	cmd := m.list.SetItems(items)
	if idx >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}

	done, pending := stats(tasks)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.theme.Title.Render("Todos"),
		m.theme.Success.Render(m.theme.SymDone), done,
		m.theme.Pending.Render(m.theme.SymPending), pending,
		m.theme.Accent.Render("Total"), len(tasks),
	)
	return cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		title := "Add todo: title"
		switch m.mode {
		case addingDescription:
			title = "Add todo: description for " + m.pendingTitle
		case editing:
			title = fmt.Sprintf("Edit todo #%d", m.editID)
		}
		if m.inputErr != "" {
			title += "  " + m.theme.Error.Render(m.inputErr)
		}
		bar := m.r.NewStyle().
			Border(m.theme.Border).
			BorderForeground(m.theme.BorderColor).
			Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return m.theme.PanelString(m.r, []string{content})
}

func stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Run opens the list on st and saves it to path on exit if anything changed.
func Run(path string, st *jsonstore.Store, theme ui.Theme, r *lipgloss.Renderer, out io.Writer) (saved bool, err error) {
	p := tea.NewProgram(New(st, theme, r), tea.WithAltScreen(), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		return false, nil
	}
	if err := fm.Store().Save(path); err != nil {
		return false, err
	}
	return true, nil
}
