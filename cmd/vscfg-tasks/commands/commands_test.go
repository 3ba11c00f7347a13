package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vscfg/cmd/vscfg-tasks/commands"
	"go.trai.ch/vscfg/internal/app"
	"go.trai.ch/vscfg/internal/build"
	"go.trai.ch/vscfg/internal/core/domain"
)

type mockApp struct {
	generateFunc func(ctx context.Context, opts app.TaskOptions) (app.TaskResult, error)
}

func (m *mockApp) GenerateTasks(ctx context.Context, opts app.TaskOptions) (app.TaskResult, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return app.TaskResult{}, nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.TaskOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.TaskOptions) (app.TaskResult, error) {
				captured = opts
				return app.TaskResult{Load: domain.LoadNotFound, Written: true}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{
			"--file", ".vscode/tasks.json",
			"--label", "build",
			"--make_cmd", "/usr/bin/make",
			"--config", "custom.yaml",
			"--check",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.TaskOptions{
			File:       ".vscode/tasks.json",
			Label:      "build",
			MakeCmd:    "/usr/bin/make",
			ConfigPath: "custom.yaml",
			Check:      true,
		}, captured)
		assert.Equal(t, "Creating new tasks file.\n", out.String())
	})

	t.Run("reports an update", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.TaskOptions) (app.TaskResult, error) {
				return app.TaskResult{Load: domain.LoadLoaded, Written: true}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"--file", "t.json", "--label", "b", "--make_cmd", "make"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "Updating existing tasks file.\n", out.String())
	})

	t.Run("prints nothing in check mode", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.TaskOptions) (app.TaskResult, error) {
				return app.TaskResult{Load: domain.LoadLoaded}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"--file", "t.json", "--label", "b", "--make_cmd", "make", "--check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, out.String())
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.TaskOptions) (app.TaskResult, error) {
				return app.TaskResult{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"--file", "t.json", "--label", "b", "--make_cmd", "make"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires all options", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.TaskOptions) (app.TaskResult, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"--file", "t.json"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "label")
		assert.Contains(t, err.Error(), "make_cmd")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"--file", "t.json", "--label", "b", "--make_cmd", "make", "extra"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "vscfg-tasks version "+build.Version)
}
