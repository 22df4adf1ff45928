package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/pkg/loader"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a theme document for parse, default-theme and color errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags) error {
	settings, err := loadSettings(cmd, rootFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, settings)
	if err != nil {
		return err
	}

	path := settings.Themes.File
	registry, err := loader.LoadFile(path, loader.WithLogger(log), loader.WithStrictColors(true))
	if err != nil {
		problems := splitErrors(err)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d problem(s)\n", path, len(problems))
		for _, p := range problems {
			fmt.Fprintf(out, "  - %v\n", p)
		}
		return newCommandError("validate", path, fmt.Errorf("%d problem(s) found", len(problems)), "Fix the problems listed above and run 'themer validate' again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d theme(s) valid, default %s\n", path, len(registry.Names()), registry.Default().Name())
	fmt.Fprintf(cmd.OutOrStdout(), "themes: %s\n", strings.Join(registry.Names(), ", "))
	return nil
}

// splitErrors flattens an errors.Join tree into its leaves.
func splitErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, splitErrors(e)...)
	}
	return out
}
