package jsonstore

import (
	"errors"
	"fmt"
)

// MaxID is the largest id a todo file may hold.
const MaxID int64 = 1<<32 - 1

// ErrIDOutOfRange is returned by Save for a task whose id exceeds MaxID.
var ErrIDOutOfRange = errors.New("todo id out of range")

// IDStrategy decides the id handed to a newly added task.
type IDStrategy int

const (
	// IDFromCount uses the current number of tasks. After a removal the
	// next id can collide with a task that is still stored.
	IDFromCount IDStrategy = iota
	// IDFromMax uses the largest stored id plus one, so ids stay unique.
	IDFromMax
)

func (s IDStrategy) String() string {
	switch s {
	case IDFromMax:
		return "max"
	default:
		return "count"
	}
}

// ParseIDStrategy maps "count" or "max" to a strategy.
func ParseIDStrategy(name string) (IDStrategy, error) {
	switch name {
	case "", "count":
		return IDFromCount, nil
	case "max":
		return IDFromMax, nil
	}
	return IDFromCount, fmt.Errorf("unknown id strategy %q (want count or max)", name)
}

func (s *Store) nextID() int {
	if s.ids == IDFromMax {
		next := 0
		for _, t := range s.tasks {
			if t.ID >= next {
				next = t.ID + 1
			}
		}
		return next
	}
	return len(s.tasks)
}
