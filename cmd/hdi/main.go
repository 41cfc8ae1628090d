package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghaida/hinject/di"
)

const (
	fileFlag     = "file"
	scopeFlag    = "scope"
	logLevelFlag = "log-level"
)

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --%s: %w", logLevelFlag, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().Timestamp().Logger(), nil
}

// loadAndBuild is shared by every subcommand.
func loadAndBuild(path string, log zerolog.Logger) (*Tree, map[string]di.Injector, error) {
	tree, err := LoadTree(path)
	if err != nil {
		return nil, nil, err
	}
	scopes, err := buildTree(tree, log)
	if err != nil {
		return nil, nil, err
	}
	return tree, scopes, nil
}

func resolveCommand(level *string) *cobra.Command {
	var path string
	c := &cobra.Command{
		Use:   "resolve",
		Short: "Run every lookup in a tree file and print the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), *level)
			if err != nil {
				return err
			}
			tree, scopes, err := loadAndBuild(path, log)
			if err != nil {
				return err
			}
			for _, r := range runLookups(tree, scopes) {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}
	c.Flags().StringVarP(&path, fileFlag, "f", "", "path to the injector tree YAML file")
	c.MarkFlagRequired(fileFlag) // nolint
	return c
}

func dumpCommand(level *string) *cobra.Command {
	var path, scope string
	c := &cobra.Command{
		Use:   "dump",
		Short: "Print the injector chain of one scope, or of every scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), *level)
			if err != nil {
				return err
			}
			tree, scopes, err := loadAndBuild(path, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if scope != "" {
				inj, ok := scopes[scope]
				if !ok {
					return fmt.Errorf("unknown scope %q", scope)
				}
				di.Dump(out, inj)
				return nil
			}
			for _, s := range tree.Scopes {
				fmt.Fprintf(out, "# %s\n", s.Name)
				di.Dump(out, scopes[s.Name])
			}
			return nil
		},
	}
	c.Flags().StringVarP(&path, fileFlag, "f", "", "path to the injector tree YAML file")
	c.Flags().StringVar(&scope, scopeFlag, "", "dump only this scope's chain")
	c.MarkFlagRequired(fileFlag) // nolint
	return c
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "hdi",
		Short:         "Inspect hierarchical injector trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&level, logLevelFlag, "warn", "log level (debug, info, warn, error)")
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(resolveCommand(&level), dumpCommand(&level))
	return root
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hdi:", err)
		os.Exit(1)
	}
}
