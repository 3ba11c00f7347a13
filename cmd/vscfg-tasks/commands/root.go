// Package commands implements the CLI commands for vscfg-tasks.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vscfg/internal/app"
	"go.trai.ch/vscfg/internal/build"
	"go.trai.ch/vscfg/internal/core/domain"
)

// CLI represents the command line interface for vscfg-tasks.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	GenerateTasks(ctx context.Context, opts app.TaskOptions) (app.TaskResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "vscfg-tasks",
		Short:         "Add or update a build task in a VS Code tasks file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runGenerate,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("file", "", "Path of the tasks file to create or update, usually "+domain.DefaultTasksPath())
	rootCmd.Flags().String("label", "", "Label identifying the build task")
	rootCmd.Flags().String("make_cmd", "", "Build command the task runs")
	rootCmd.Flags().String("config", "", "Path of the configuration file (default "+domain.ConfigFileName+" if present)")
	rootCmd.Flags().Bool("check", false, "Fail if the tasks file is not up to date instead of writing it")

	for _, name := range []string{"file", "label", "make_cmd"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	label, _ := cmd.Flags().GetString("label")
	makeCmd, _ := cmd.Flags().GetString("make_cmd")
	configPath, _ := cmd.Flags().GetString("config")
	check, _ := cmd.Flags().GetBool("check")

	res, err := c.app.GenerateTasks(cmd.Context(), app.TaskOptions{
		File:       file,
		Label:      label,
		MakeCmd:    makeCmd,
		ConfigPath: configPath,
		Check:      check,
	})
	if err != nil {
		return err
	}

	if res.Written {
		out := cmd.OutOrStdout()
		if res.Load == domain.LoadLoaded {
			_, _ = fmt.Fprintln(out, "Updating existing tasks file.")
		} else {
			_, _ = fmt.Fprintln(out, "Creating new tasks file.")
		}
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
