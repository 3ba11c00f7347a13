// Package commands implements the CLI commands for vscfg-cpp.
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

// CLI represents the command line interface for vscfg-cpp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	GenerateProperties(ctx context.Context, opts app.PropertiesOptions) (app.PropertiesResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "vscfg-cpp",
		Short:         "Generate a VS Code C/C++ properties file from compiler flags",
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

	rootCmd.Flags().String("cc", "", "Path of the C compiler")
	rootCmd.Flags().String("cxx", "", "Path of the C++ compiler")
	rootCmd.Flags().String("cflags", "", "C compiler flags, split like a shell command line")
	rootCmd.Flags().String("cxxflags", "", "C++ compiler flags, split like a shell command line")
	rootCmd.Flags().String("output", "", "Path of the properties file, usually "+domain.DefaultPropertiesPath())
	rootCmd.Flags().String("config", "", "Path of the configuration file (default "+domain.ConfigFileName+" if present)")
	rootCmd.Flags().Bool("check", false, "Fail if the properties file is not up to date instead of writing it")

	// Flag strings may be empty but must be given.
	for _, name := range []string{"cc", "cxx", "cflags", "cxxflags", "output"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	cc, _ := cmd.Flags().GetString("cc")
	cxx, _ := cmd.Flags().GetString("cxx")
	cflags, _ := cmd.Flags().GetString("cflags")
	cxxflags, _ := cmd.Flags().GetString("cxxflags")
	output, _ := cmd.Flags().GetString("output")
	configPath, _ := cmd.Flags().GetString("config")
	check, _ := cmd.Flags().GetBool("check")

	_, err := c.app.GenerateProperties(cmd.Context(), app.PropertiesOptions{
		CC:         cc,
		CXX:        cxx,
		CFlags:     cflags,
		CXXFlags:   cxxflags,
		Output:     output,
		ConfigPath: configPath,
		Check:      check,
	})
	return err
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
