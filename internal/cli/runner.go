package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/exitcode"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Group  bool   // list grouped by pending/done
	Output string // text, json or yaml
	IDs    jsonstore.IDStrategy
	UI     ui.Options
	Logger *log.Logger

	Out, Err io.Writer // default to os.Stdout and os.Stderr
}

type runner struct {
	opt Options
	p   *ui.Printer
	log *log.Logger
}

// Run dispatches subcommands and returns an exit code.
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	r := &runner{
		opt: opt,
		p:   ui.NewPrinter(opt.Out, opt.Err, opt.UI),
		log: opt.Logger,
	}

	if len(args) == 0 {
		PrintHelp(opt.Err)
		return exitcode.Usage
	}
	cmd, a := args[0], args[1:]
	r.log.Debug("dispatch", "cmd", cmd, "args", len(a))

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return exitcode.Success

	case "add":
		if len(a) != 3 {
			return r.usage("todo add <file> <title> <description>")
		}
		return r.doAdd(a[0], a[1], a[2])

	case "get":
		switch len(a) {
		case 1:
			return r.doList(a[0])
		case 2:
			id, ok := r.parseID("get", a[1])
			if !ok {
				return exitcode.Usage
			}
			return r.doGet(a[0], id)
		}
		return r.usage("todo get <file> [id]")

	case "remove", "rm":
		if len(a) != 2 {
			return r.usage("todo remove <file> <id>")
		}
		id, ok := r.parseID("remove", a[1])
		if !ok {
			return exitcode.Usage
		}
		return r.doRemove(a[0], id)

	case "done", "undone":
		if len(a) != 2 {
			return r.usage("todo " + cmd + " <file> <id>")
		}
		id, ok := r.parseID(cmd, a[1])
		if !ok {
			return exitcode.Usage
		}
		return r.doSetDone(a[0], id, cmd == "done")

	case "ls":
		if len(a) != 1 {
			return r.usage("todo ls <file>")
		}
		return r.doInteractive(a[0])
	}

	r.p.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return exitcode.Usage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - keep todos in a JSON file

Usage:
  todo [flags] <subcommand> <file> [args]

Subcommands:
  add <file> <title> <description>   Add a todo (creates the file if missing)
  get <file> [id]                    Show one todo, or all of them
  remove <file> <id>                 Remove a todo
  done <file> <id>                   Mark a todo as done
  undone <file> <id>                 Mark a todo as not done
  ls <file>                          Browse and edit todos interactively

Flags:
  -group              group listing by pending/done
  -theme NAME         classic, neon or mono
  -color MODE         auto, always or never
  -o FORMAT           get output: text, json or yaml
  -ids MODE           id for new todos: count (default) or max
  -log-level LEVEL    debug, info, warn, error
  -config FILE        read the options above from a TOML file

Examples:
  todo add todos.json "Buy milk" "2L"
  todo get todos.json
  todo done todos.json 0
  todo remove todos.json 0
`)
}

func (r *runner) usage(msg string) int {
	r.p.Fail("usage: " + msg)
	return exitcode.Usage
}

func (r *runner) parseID(cmd, s string) (int, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		r.p.Fail(cmd + ": not a todo id: " + s)
		return 0, false
	}
	return int(id), true
}

// -------------- subcommand impls ----------------

func (r *runner) doAdd(path, title, description string) int {
	st, err := jsonstore.LoadOrNew(path)
	if err != nil {
		return r.fail("load", err)
	}
	st.SetIDStrategy(r.opt.IDs)
	t := st.Add(title, description)
	r.log.Debug("added todo", "id", t.ID, "ids", st.IDStrategy())
	if code := r.save(st, path); code != exitcode.Success {
		return code
	}
	r.p.OK("added")
	r.p.Println(r.p.TaskLine(t))
	return exitcode.Success
}

func (r *runner) doGet(path string, id int) int {
	st, ok := r.load(path)
	if !ok {
		return exitcode.Failure
	}
	t, found := st.Get(id)
	if !found {
		r.notFound(id)
		return exitcode.Success
	}
	if r.opt.Output != "text" && r.opt.Output != "" {
		return r.encode(t)
	}
	r.p.Println(r.p.TaskLine(t))
	return exitcode.Success
}

func (r *runner) doList(path string) int {
	st, ok := r.load(path)
	if !ok {
		return exitcode.Failure
	}
	tasks := st.All()
	if r.opt.Output != "text" && r.opt.Output != "" {
		return r.encode(tasks)
	}
	r.p.Panel(listLines(r.p.Theme(), tasks, r.opt.Group))
	return exitcode.Success
}

func (r *runner) doRemove(path string, id int) int {
	st, ok := r.load(path)
	if !ok {
		return exitcode.Failure
	}
	t, found := st.Remove(id)
	if !found {
		r.notFound(id)
		return exitcode.Success
	}
	if code := r.save(st, path); code != exitcode.Success {
		return code
	}
	r.p.OK("removed")
	r.p.Println(r.p.TaskLine(t))
	return exitcode.Success
}

func (r *runner) doSetDone(path string, id int, done bool) int {
	st, ok := r.load(path)
	if !ok {
		return exitcode.Failure
	}
	var (
		t     model.Task
		found bool
	)
	if done {
		t, found = st.MarkDone(id)
	} else {
		t, found = st.MarkUndone(id)
	}
	if !found {
		r.notFound(id)
		return exitcode.Success
	}
	if code := r.save(st, path); code != exitcode.Success {
		return code
	}
	if done {
		r.p.OK("marked done")
	} else {
		r.p.OK("marked undone")
	}
	r.p.Println(r.p.TaskLine(t))
	return exitcode.Success
}

func (r *runner) doInteractive(path string) int {
	st, ok := r.load(path)
	if !ok {
		return exitcode.Failure
	}
	st.SetIDStrategy(r.opt.IDs)
	saved, err := tui.Run(path, st, r.p.Theme(), r.p.Renderer(), r.opt.Out)
	if err != nil {
		return r.fail("ls", err)
	}
	if saved {
		r.log.Debug("saved todos", "path", path, "count", st.Len())
		r.p.OK("saved")
	}
	return exitcode.Success
}

// -------------- shared helpers --------------

func (r *runner) load(path string) (*jsonstore.Store, bool) {
	st, err := jsonstore.Load(path)
	if err != nil {
		r.fail("load", err)
		return nil, false
	}
	r.log.Debug("loaded todos", "path", path, "count", st.Len())
	return st, true
}

func (r *runner) save(st *jsonstore.Store, path string) int {
	if err := st.Save(path); err != nil {
		return r.fail("save", err)
	}
	r.log.Debug("saved todos", "path", path, "count", st.Len())
	return exitcode.Success
}

func (r *runner) notFound(id int) {
	r.log.Debug("todo not found", "id", id)
	r.p.Info(fmt.Sprintf("todo not found: %d", id))
}

// fail reports a load or save error and returns the failure exit code.
func (r *runner) fail(op string, err error) int {
	r.p.Fail(op + ": " + err.Error())

	var (
		ioErr    *jsonstore.IOError
		parseErr *jsonstore.ParseError
	)
	switch {
	case errors.As(err, &parseErr):
		r.log.Debug("unreadable todo file", "path", parseErr.Path, "err", parseErr.Err)
		r.p.Hint("the file must hold a JSON array of {id, title, description, done} objects")
	case errors.Is(err, jsonstore.ErrIDOutOfRange):
		r.log.Debug("todo id out of range", "err", err)
		r.p.Hint(fmt.Sprintf("ids stop at %d; the file was left unchanged", jsonstore.MaxID))
	case errors.As(err, &ioErr) && errors.Is(err, fs.ErrNotExist):
		r.log.Debug("missing todo file", "path", ioErr.Path)
		r.p.Hint("create it with `todo add " + ioErr.Path + " <title> <description>`")
	case errors.As(err, &ioErr):
		r.log.Debug("todo file i/o", "op", ioErr.Op, "path", ioErr.Path, "err", ioErr.Err)
	}
	return exitcode.Failure
}
