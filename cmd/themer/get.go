package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/internal/query"
)

type getOptions struct {
	valueType string
	adjust    string
	screen    string
}

func newGetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Resolve one value from the selected theme",
		Long: "Resolve a dotted key against the selected theme, falling back to the default theme.\n\n" +
			"Supported types: " + strings.Join(query.Types(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.valueType, "type", string(query.TypeRaw), "Type to resolve the value as")
	cmd.Flags().StringVar(&opts.adjust, "adjust", "", "Point size adjustment for fonts, labels and navigation bars")
	cmd.Flags().StringVar(&opts.screen, "screen", "", "Screen class for screenfont lookups (e.g. 40mm, 44mm)")

	return cmd
}

func runGet(cmd *cobra.Command, rootFlags *rootFlags, opts *getOptions, key string) error {
	req, err := query.Parse(query.Params{Key: key, Type: opts.valueType, Adjust: opts.adjust, Screen: opts.screen})
	if err != nil {
		return newCommandError("get", key, err, "Run 'themer get --help' for the supported types.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	t, err := app.Theme()
	if err != nil {
		return err
	}

	value, err := query.Resolve(t, req)
	if err != nil {
		return newCommandError("get", fmt.Sprintf("%s from theme %s", key, t.Name()), err, "Check the key path and the value's shape in the theme document.")
	}

	app.Logger.WithFields(map[string]any{"theme": t.Name(), "key": key, "type": string(req.Type)}).Debug("value resolved")
	return printValue(cmd, value)
}

// printValue writes strings verbatim and everything else as indented JSON.
func printValue(cmd *cobra.Command, value any) error {
	if s, ok := value.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
