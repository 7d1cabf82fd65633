package todo

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status of a to-do item.
type Status int

const (
	StatusTodo Status = iota
	StatusComplete
)

// String returns the persisted name of the status.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "COMPLETE"
	default:
		return "TODO"
	}
}

// MarshalJSON persists the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the names written by MarshalJSON.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch strings.ToUpper(name) {
	case "TODO":
		*s = StatusTodo
	case "COMPLETE":
		*s = StatusComplete
	default:
		return fmt.Errorf("unknown todo status %q", name)
	}
	return nil
}

// Item is a single task.
type Item struct {
	Task   string `json:"task"`
	Status Status `json:"status"`
}

// New creates an open task.
func New(task string) Item {
	return Item{Task: task, Status: StatusTodo}
}

// String renders the task, struck through (Pango markup) when complete.
func (i Item) String() string {
	if i.Status == StatusComplete {
		return "<s>" + i.Task + "</s>"
	}
	return i.Task
}

// Clone returns a copy of the item.
func (i Item) Clone() Item { return i }

// Toggled flips the status.
func (i Item) Toggled() Item {
	if i.Status == StatusComplete {
		i.Status = StatusTodo
	} else {
		i.Status = StatusComplete
	}
	return i
}

// Done reports whether the task is complete.
func (i Item) Done() bool { return i.Status == StatusComplete }
