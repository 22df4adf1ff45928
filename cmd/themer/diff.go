package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/pkg/diff"
)

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Show how two themes resolve differently",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args[0], args[1])
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, fromName, toName string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	from, err := app.Registry.MustTheme(fromName)
	if err != nil {
		return newCommandError("diff", fromName, err, "Run 'themer list' to see the available themes.")
	}
	to, err := app.Registry.MustTheme(toName)
	if err != nil {
		return newCommandError("diff", toName, err, "Run 'themer list' to see the available themes.")
	}

	result := diff.Themes(from, to)
	if result == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s resolve identically\n", from.Name(), to.Name())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}
