package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 4, 8, "██░░░░░░  25%"},
		{3, 3, 5, "█████ 100%"},
		{1, 2, 1, "██░░░  50%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestTaskLineMono(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, Options{Theme: "mono", Color: "auto"})

	tests := []struct {
		task model.Task
		want string
	}{
		{model.Task{ID: 0, Title: "Buy milk", Description: "2L"}, "#0 [ ] Buy milk · 2L"},
		{model.Task{ID: 4, Title: "Call", Done: true}, "#4 [x] Call"},
	}
	for _, tt := range tests {
		if got := p.TaskLine(tt.task); got != tt.want {
			t.Errorf("TaskLine(%v) = %q, want %q", tt.task, got, tt.want)
		}
	}
}

func TestPrinterStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, Options{Theme: "classic", Color: "never"})

	p.OK("added")
	p.Info("todo not found: 3")
	p.Fail("load: boom")
	p.Hint("run `todo get <file>`")

	if got := out.String(); got != "✔ added\ntodo not found: 3\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "✖ load: boom\nHint: run `todo get <file>`\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestPanelMonoBorder(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, Options{Theme: "mono"})
	p.Panel([]string{"Todos", "#0 [ ] a"})

	text := out.String()
	for _, want := range []string{"+", "|", "Todos", "#0 [ ] a"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel missing %q:\n%s", want, text)
		}
	}
}

func TestColorAlwaysEmitsEscapes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, Options{Theme: "classic", Color: "always"})
	p.OK("added")
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", out.String())
	}
}

func TestNewThemeFallsBackToClassic(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, Options{Theme: "unknown", Color: "never"})
	if p.Theme().Name != "classic" {
		t.Errorf("theme = %q, want classic", p.Theme().Name)
	}
}
