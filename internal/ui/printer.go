// Package ui renders CLI output with Lip Gloss.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todolist/internal/model"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// Options select the theme and color mode ("auto", "always" or "never").
type Options struct {
	Theme string
	Color string
}

// Printer writes styled messages to an output and an error stream.
type Printer struct {
	out, errOut io.Writer
	r, errR     *lipgloss.Renderer
	theme       Theme
	errTheme    Theme
}

// NewPrinter binds a renderer and theme to each writer.
func NewPrinter(out, errOut io.Writer, opt Options) *Printer {
	r := newRenderer(out, opt)
	errR := newRenderer(errOut, opt)
	return &Printer{
		out:      out,
		errOut:   errOut,
		r:        r,
		errR:     errR,
		theme:    NewTheme(opt.Theme, r),
		errTheme: NewTheme(opt.Theme, errR),
	}
}

func newRenderer(w io.Writer, opt Options) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case opt.Color == "never" || opt.Theme == "mono":
		r.SetColorProfile(termenv.Ascii)
	case opt.Color == "always":
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// Theme returns the theme bound to the output stream.
func (p *Printer) Theme() Theme { return p.theme }

// Renderer returns the renderer bound to the output stream.
func (p *Printer) Renderer() *lipgloss.Renderer { return p.r }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.theme.Success.Render(symCheck+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.errTheme.Error.Render(symCross+" "+msg))
}

// Hint prints a muted follow-up line on the error stream.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.errOut, p.errTheme.Muted.Render("Hint: "+msg))
}

// Info prints a muted line on the output stream.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.theme.Muted.Render(msg))
}

func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Panel draws lines inside the theme's border.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.theme.PanelString(p.r, lines))
}

// TaskLine renders "#<id> <box> <title> · <description>".
func (p *Printer) TaskLine(t model.Task) string {
	return TaskLine(p.theme, t)
}

// TaskLine renders one task with th.
func TaskLine(th Theme, t model.Task) string {
	box := th.Muted.Render(th.BoxUnchecked)
	title := t.Title
	if t.Done {
		box = th.Success.Render(th.BoxChecked)
		title = th.Done.Render(title)
	}
	line := fmt.Sprintf("%s %s %s", th.Muted.Render(fmt.Sprintf("#%d", t.ID)), box, title)
	if t.Description != "" {
		line += th.Muted.Render(" · " + t.Description)
	}
	return line
}
