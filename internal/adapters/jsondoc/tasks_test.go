package jsondoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.trai.ch/vscfg/internal/adapters/jsondoc"
	"go.trai.ch/vscfg/internal/core/domain"
)

func TestTaskCodec_Decode(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"version": "2.0.0",
		"tasks": [
			{"label": "build", "type": "shell", "command": "make"},
			{"label": 42},
			"stray",
			{"type": "process", "command": "run"},
			{"label": "test", "command": "make", "args": ["test"]}
		]
	}`)

	c, err := jsondoc.NewTaskCodec().Decode(data)
	require.NoError(t, err)
	require.Len(t, c.Entries, 5)

	assert.Equal(t, []string{"build", "test"}, c.Labels())
	assert.False(t, c.Entries[1].HasLabel)
	assert.False(t, c.Entries[2].HasLabel)
	assert.False(t, c.Entries[3].HasLabel)
	assert.Equal(t, `"stray"`, string(c.Entries[2].Raw))
	assert.JSONEq(t, `{"label": "test", "command": "make", "args": ["test"]}`, string(c.Entries[4].Raw))
	assert.Equal(t, data, c.Source)
}

func TestTaskCodec_DecodeDuplicateLabel(t *testing.T) {
	t.Parallel()

	c, err := jsondoc.NewTaskCodec().Decode([]byte(`{"tasks":[{"label":"a","label":"b"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, c.Labels())
	assert.Equal(t, -1, c.IndexOf("a"))
}

func TestTaskCodec_DecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "empty file", data: "", want: domain.ErrTasksFileInvalid},
		{name: "not json", data: "tasks: []", want: domain.ErrTasksFileInvalid},
		{name: "root array", data: "[]", want: domain.ErrTasksFileInvalid},
		{name: "missing tasks", data: `{"version": "2.0.0"}`, want: domain.ErrMissingTasksField},
		{name: "tasks not array", data: `{"tasks": {"label": "x"}}`, want: domain.ErrInvalidTasksField},
		{name: "tasks null", data: `{"tasks": null}`, want: domain.ErrInvalidTasksField},
		{name: "duplicate tasks", data: `{"tasks": [], "tasks": {}}`, want: domain.ErrTasksFileInvalid},
		{name: "duplicate version", data: `{"version": "0.1.0", "tasks": [], "version": "1.0.0"}`, want: domain.ErrTasksFileInvalid},
	}

	codec := jsondoc.NewTaskCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := codec.Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestTaskCodec_EncodeFresh(t *testing.T) {
	t.Parallel()

	entry, err := domain.NewBuildTask("build", "/usr/bin/make", domain.DefaultConfig().Task).Entry()
	require.NoError(t, err)

	out, err := jsondoc.NewTaskCodec().Encode(&domain.TaskCollection{Entries: []domain.TaskEntry{entry}})
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "{\n    \"version\": \"2.0.0\",\n    \"tasks\": ["), s)
	assert.True(t, strings.HasSuffix(s, "}\n"), s)
	assert.JSONEq(t, `{
		"version": "2.0.0",
		"tasks": [{
			"type": "shell",
			"label": "build",
			"command": "/usr/bin/make",
			"args": ["all"],
			"problemMatcher": ["$gcc"],
			"group": {"kind": "build", "isDefault": true}
		}]
	}`, s)
}

func TestTaskCodec_RoundTripPreservesForeignContent(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"version": "1.0.0",
		"inputs": [{"id": "target", "type": "promptString"}],
		"tasks": [
			{"label": "lint", "type": "process", "command": "golangci-lint", "options": {"cwd": "src"}}
		]
	}`)

	codec := jsondoc.NewTaskCodec()
	c, err := codec.Decode(data)
	require.NoError(t, err)

	entry, err := domain.NewBuildTask("build", "make", domain.DefaultConfig().Task).Entry()
	require.NoError(t, err)
	c.Entries = append(c.Entries, entry)

	out, err := codec.Encode(c)
	require.NoError(t, err)

	doc := gjson.ParseBytes(out)
	assert.Equal(t, "2.0.0", doc.Get("version").String())
	assert.Equal(t, "target", doc.Get("inputs.0.id").String())
	assert.Equal(t, int64(2), doc.Get("tasks.#").Int())
	assert.Equal(t, "src", doc.Get("tasks.0.options.cwd").String())
	assert.Equal(t, "build", doc.Get("tasks.1.label").String())
}
