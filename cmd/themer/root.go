package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	file     string
	theme    string
	logLevel string
	config   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themer",
		Short:         "Themer resolves styles from hierarchical theme documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "Theme document (.yaml, .json or .plist)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme to resolve against (defaults to the document's default theme)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "Settings file (defaults to ./themer.yaml when present)")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
