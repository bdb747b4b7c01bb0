package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todolist/internal/exitcode"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// -------------- rendering helpers --------------

func (r *runner) encode(v any) int {
	var (
		b   []byte
		err error
	)
	switch r.opt.Output {
	case "yaml":
		b, err = yaml.Marshal(v)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
		b = buf.Bytes()
	}
	if err != nil {
		r.p.Fail("encode: " + err.Error())
		return exitcode.Failure
	}
	fmt.Fprint(r.opt.Out, string(b))
	return exitcode.Success
}

func listLines(th ui.Theme, tasks []model.Task, group bool) []string {
	d, p := stats(tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), d,
		th.Pending.Render(th.SymPending), p,
		th.Accent.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, th.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(th, tasks)...)
	} else {
		lines = append(lines, flatLines(th, tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render("Tip: add with `todo add <file> \"Buy milk\" \"2L\"`"))
	return lines
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

// maxTitleWidth caps a title in listings, in terminal cells.
const maxTitleWidth = 80

func flatLines(th ui.Theme, tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{th.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		t.Title = ansi.Truncate(t.Title, maxTitleWidth, "...")
		out = append(out, ui.TaskLine(th, t))
	}
	return out
}

func groupLines(th ui.Theme, tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, th.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(th, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(th, done)...)
	}
	return lines
}
