package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed storage. Single file holding a bare array of tasks.
// No locking and no temp-file swap: a save truncates and rewrites the file,
// and two processes writing the same file can clobber each other.

// Store is an ordered list of tasks. Insertion order is preserved.
type Store struct {
	tasks []model.Task
	ids   IDStrategy
}

// New returns an empty store.
func New() *Store {
	return &Store{tasks: []model.Task{}}
}

// Load reads path and parses its full contents as a JSON array of tasks.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Store{tasks: tasksFromDocument(doc)}, nil
}

// tasksFromDocument reads a schema-checked document by exact key.
// encoding/json would also accept "ID" or "Done" for the tagged fields.
func tasksFromDocument(doc any) []model.Task {
	items, _ := doc.([]any)
	tasks := make([]model.Task, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		id, _ := obj["id"].(float64)
		title, _ := obj["title"].(string)
		description, _ := obj["description"].(string)
		done, _ := obj["done"].(bool)
		tasks = append(tasks, model.Task{
			ID:          int(id),
			Title:       title,
			Description: description,
			Done:        done,
		})
	}
	return tasks
}

// LoadOrNew is Load, except that a missing file yields an empty store.
func LoadOrNew(path string) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return s, nil
}

// Save writes the tasks to path, creating or truncating it. A task whose id
// Load would reject fails the save before the file is touched.
func (s *Store) Save(path string) error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	for _, t := range tasks {
		if t.ID < 0 || int64(t.ID) > MaxID {
			return &IOError{Op: "encode", Path: path, Err: fmt.Errorf("%w: %d", ErrIDOutOfRange, t.ID)}
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SetIDStrategy changes how Add picks ids. The default is IDFromCount.
func (s *Store) SetIDStrategy(ids IDStrategy) { s.ids = ids }

// IDStrategy reports the strategy Add uses.
func (s *Store) IDStrategy() IDStrategy { return s.ids }

// Len returns the number of stored tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Add appends a pending task and returns it.
func (s *Store) Add(title, description string) model.Task {
	t := model.Task{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Get returns the first task with the given id.
func (s *Store) Get(id int) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// GetMut returns a pointer to the first task with the given id.
// The pointer is valid until the next Add or Remove.
func (s *Store) GetMut(id int) (*model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return &s.tasks[i], true
	}
	return nil, false
}

// Remove deletes the first task with the given id and returns it.
// Later tasks shift left and keep their ids.
func (s *Store) Remove(id int) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return t, true
}

// MarkDone sets done on the first task with the given id.
func (s *Store) MarkDone(id int) (model.Task, bool) {
	return s.setDone(id, true)
}

// MarkUndone clears done on the first task with the given id.
func (s *Store) MarkUndone(id int) (model.Task, bool) {
	return s.setDone(id, false)
}

// All returns a copy of the tasks in store order.
func (s *Store) All() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) setDone(id int, done bool) (model.Task, bool) {
	t, ok := s.GetMut(id)
	if !ok {
		return model.Task{}, false
	}
	t.Done = done
	return *t, true
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}
