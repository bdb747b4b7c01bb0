package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newModel(t *testing.T, titles ...string) Model {
	t.Helper()
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	st := jsonstore.New()
	for _, title := range titles {
		st.Add(title, "desc "+title)
	}
	return New(st, ui.NewTheme("mono", r), r)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestToggleDone(t *testing.T) {
	m := newModel(t, "a", "b")

	m = press(t, m, space)
	if got, _ := m.Store().Get(0); !got.Done {
		t.Fatal("space did not mark task 0 done")
	}
	if !m.Changed() {
		t.Error("Changed() = false after toggle")
	}

	m = press(t, m, space)
	if got, _ := m.Store().Get(0); got.Done {
		t.Error("second space did not mark task 0 undone")
	}
}

func TestRemoveSelected(t *testing.T) {
	m := newModel(t, "a", "b")

	m = press(t, m, runes("d"))
	all := m.Store().All()
	if len(all) != 1 || all[0].ID != 1 {
		t.Fatalf("after remove: %v, want only id 1", all)
	}
	if len(m.list.Items()) != 1 {
		t.Errorf("list has %d items, want 1", len(m.list.Items()))
	}
}

func TestRemoveOnEmptyList(t *testing.T) {
	m := newModel(t)
	m = press(t, m, runes("d"), space)
	if m.Changed() {
		t.Error("Changed() = true on empty list")
	}
}

func TestAddTitleThenDescription(t *testing.T) {
	m := newModel(t, "a")

	m = press(t, m, runes("a"), runes("Buy milk"), enter)
	if m.mode != addingDescription {
		t.Fatalf("mode = %v, want addingDescription", m.mode)
	}
	m = press(t, m, runes("2L"), enter)

	got, ok := m.Store().Get(1)
	if !ok {
		t.Fatalf("task 1 not added: %v", m.Store().All())
	}
	if got.Title != "Buy milk" || got.Description != "2L" || got.Done {
		t.Errorf("added %v", got)
	}
	if m.mode != browsing || !m.Changed() {
		t.Errorf("mode = %v, changed = %v", m.mode, m.Changed())
	}
	if m.list.Index() != 1 {
		t.Errorf("cursor at %d, want new item 1", m.list.Index())
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	m := newModel(t)
	m = press(t, m, runes("a"), enter)
	if m.mode != addingTitle || m.inputErr == "" {
		t.Errorf("mode = %v, inputErr = %q", m.mode, m.inputErr)
	}
	if m.Store().Len() != 0 {
		t.Error("empty title was added")
	}
}

func TestAddCancel(t *testing.T) {
	m := newModel(t)
	m = press(t, m, runes("a"), runes("x"), esc)
	if m.mode != browsing || m.Changed() || m.Store().Len() != 0 {
		t.Errorf("cancel left mode = %v, changed = %v, len = %d", m.mode, m.Changed(), m.Store().Len())
	}
}

func TestEditTitle(t *testing.T) {
	m := newModel(t, "old")

	m = press(t, m, runes("e"))
	if m.ti.Value() != "old" {
		t.Fatalf("edit input = %q, want old", m.ti.Value())
	}
	m.ti.SetValue("new")
	m = press(t, m, enter)

	got, _ := m.Store().Get(0)
	if got.Title != "new" || got.Description != "desc old" {
		t.Errorf("after edit: %v", got)
	}
	if !m.Changed() {
		t.Error("Changed() = false after edit")
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, "a")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewShowsTasksAndCounts(t *testing.T) {
	m := newModel(t, "Buy milk", "Call mom")
	m = press(t, m, space)

	view := m.View()
	for _, want := range []string{"Todos", "x 1", "- 1", "Total 2", "#0 [x] Buy milk", "#1 [ ] Call mom"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestChangesSaveThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	m := newModel(t, "a")
	m = press(t, m, space)
	if err := m.Store().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := jsonstore.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, _ := loaded.Get(0); !got.Done {
		t.Errorf("saved task not done: %v", got)
	}
}
