package domain

import (
	"bytes"
	"encoding/json"
)

const (
	// TasksVersion is the schema version written at the top of every tasks file.
	TasksVersion = "2.0.0"

	// ShellTaskType marks a task as executed through the shell.
	ShellTaskType = "shell"

	// BuildGroupKind is the group a generated task is bound to.
	BuildGroupKind = "build"
)

// TaskGroup binds a task to an editor action.
type TaskGroup struct {
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
}

// TaskRecord is one build invocation bound to an editor action.
type TaskRecord struct {
	Type           string    `json:"type"`
	Label          string    `json:"label"`
	Command        string    `json:"command"`
	Args           []string  `json:"args"`
	ProblemMatcher []string  `json:"problemMatcher"`
	Group          TaskGroup `json:"group"`
}

// NewBuildTask creates a shell build task for the given label and command.
// Args and ProblemMatcher are copied and never nil, so empty lists are
// written as [] rather than null.
func NewBuildTask(label, command string, defaults TaskDefaults) TaskRecord {
	return TaskRecord{
		Type:           ShellTaskType,
		Label:          label,
		Command:        command,
		Args:           append([]string{}, defaults.Args...),
		ProblemMatcher: append([]string{}, defaults.ProblemMatcher...),
		Group: TaskGroup{
			Kind:      BuildGroupKind,
			IsDefault: defaults.IsDefault,
		},
	}
}

// TaskEntry is one element of a tasks array.
// Raw holds the element exactly as it will be serialized.
type TaskEntry struct {
	Label    string
	HasLabel bool
	Raw      json.RawMessage
}

// Entry serializes the record into a TaskEntry.
// Shell operators such as && are kept verbatim rather than HTML-escaped.
func (r TaskRecord) Entry() (TaskEntry, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return TaskEntry{}, err
	}
	raw := bytes.TrimRight(buf.Bytes(), "\n")
	return TaskEntry{Label: r.Label, HasLabel: true, Raw: raw}, nil
}

// TaskCollection is the ordered list of tasks found in a tasks file.
// It is always written with TasksVersion.
type TaskCollection struct {
	Entries []TaskEntry

	// Source is the document the collection was decoded from, nil for a fresh collection.
	Source []byte
}

// IndexOf returns the position of the entry carrying label, or -1.
func (c *TaskCollection) IndexOf(label string) int {
	for i, e := range c.Entries {
		if e.HasLabel && e.Label == label {
			return i
		}
	}
	return -1
}

// Labels returns the labels of all labeled entries in order.
func (c *TaskCollection) Labels() []string {
	labels := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.HasLabel {
			labels = append(labels, e.Label)
		}
	}
	return labels
}

// Unlabeled returns how many entries carry no string label.
// Such entries are kept but can never be matched by a merge.
func (c *TaskCollection) Unlabeled() int {
	n := 0
	for _, e := range c.Entries {
		if !e.HasLabel {
			n++
		}
	}
	return n
}
