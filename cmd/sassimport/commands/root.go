// Package commands implements the CLI commands for sassimport.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sassimport/internal/app"
	"go.trai.ch/sassimport/internal/build"
	"go.trai.ch/sassimport/internal/core/domain"
)

// CLI represents the command line interface for sassimport.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=root.go -destination=mocks/mock_application.go -package=mocks
type Application interface {
	Resolve(ctx context.Context, uris []string, from string, opts app.RunOptions) ([]app.Resolution, error)
	Check(ctx context.Context, root string, opts app.RunOptions) (*app.CheckReport, error)
	Compile(ctx context.Context, entry string, opts app.RunOptions) (*app.CompileResult, error)
	Watch(ctx context.Context, entry string, opts app.RunOptions, report func(*app.CompileResult, error)) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sassimport",
		Short:         "Resolve Sass @import statements the way node-sass-import-once does",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to the configuration file (default: sassimport.yaml in the working directory)")
	pf.StringArrayP("include-path", "I", nil, "Additional directory to search for imports (repeatable, or a path list)")
	pf.Bool("index", false, "Resolve directory imports to their _index partial")
	pf.Bool("bower", false, "Resolve imports from the bower package directory")
	pf.Bool("css", false, "Allow importing plain .css files")
	pf.String("transform", "", "How .json/.yaml imports become Sass: structural or lexical")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// runOptions builds the options shared by every command. Only flags given on
// the command line override the configuration file.
func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()

	var opts app.RunOptions
	opts.ConfigPath, _ = flags.GetString("config")

	paths, _ := flags.GetStringArray("include-path")
	for _, p := range paths {
		opts.Overrides.IncludePaths = append(opts.Overrides.IncludePaths, domain.ParseIncludePaths(p)...)
	}

	transform, _ := flags.GetString("transform")
	opts.Overrides.Transform = domain.TransformMode(transform)

	var once domain.PartialImportOnce
	set := false
	for name, dst := range map[string]**bool{
		"index": &once.Index,
		"bower": &once.Bower,
		"css":   &once.CSS,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetBool(name)
		*dst = &v
		set = true
	}
	if set {
		opts.Overrides.ImportOnce = &once
	}

	return opts
}
