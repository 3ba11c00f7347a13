package jsondoc

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TaskCodec = (*TaskCodec)(nil)

// Indent is the indentation used for every written document.
const Indent = "    "

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// TaskCodec implements ports.TaskCodec for the editor's tasks.json format.
type TaskCodec struct{}

// NewTaskCodec creates a new TaskCodec.
func NewTaskCodec() *TaskCodec {
	return &TaskCodec{}
}

// Decode validates a tasks file. The root must be an object with a 'tasks'
// array; elements of any shape are kept, and object elements with a string
// 'label' take part in label matching.
func (c *TaskCodec) Decode(data []byte) (*domain.TaskCollection, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTasksFileInvalid.Error())
	}
	if root.Kind() != KindObject {
		return nil, zerr.With(domain.ErrTasksFileInvalid, "root", root.Kind().String())
	}

	// Encode rewrites these keys in place, so a repeated one would survive with a stale value.
	for _, key := range []string{"version", "tasks"} {
		if root.Occurrences(key) > 1 {
			return nil, zerr.With(domain.ErrTasksFileInvalid, "duplicate_key", key)
		}
	}

	tasks, err := root.Field("tasks")
	if err != nil {
		return nil, domain.ErrMissingTasksField
	}

	elements, err := tasks.Elements()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidTasksField.Error())
	}

	collection := &domain.TaskCollection{
		Entries: make([]domain.TaskEntry, 0, len(elements)),
		Source:  append([]byte(nil), data...),
	}
	for _, el := range elements {
		collection.Entries = append(collection.Entries, entryFromNode(el))
	}

	return collection, nil
}

func entryFromNode(n Node) domain.TaskEntry {
	entry := domain.TaskEntry{Raw: json.RawMessage(n.Raw())}
	if n.Kind() != KindObject {
		return entry
	}
	field, err := n.Field("label")
	if err != nil {
		return entry
	}
	if label, err := field.Text(); err == nil {
		entry.Label = label
		entry.HasLabel = true
	}
	return entry
}

// Encode writes version and tasks into the collection's source document,
// keeping any other top-level keys, and pretty prints the result.
func (c *TaskCodec) Encode(collection *domain.TaskCollection) ([]byte, error) {
	doc := collection.Source
	if len(bytes.TrimSpace(doc)) == 0 {
		doc = []byte("{}")
	}

	doc, err := sjson.SetBytes(doc, "version", domain.TasksVersion)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}

	doc, err = sjson.SetRawBytes(doc, "tasks", tasksArray(collection.Entries))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}

	return withNewline(pretty.PrettyOptions(doc, prettyOptions)), nil
}

func tasksArray(entries []domain.TaskEntry) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(e.Raw)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func withNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data
}
