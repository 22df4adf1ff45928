package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the themes of a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeEntry struct {
	Name    string `json:"name"`
	Parent  string `json:"parent,omitempty"`
	Default bool   `json:"default"`
	Keys    int    `json:"keys"`
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	def := app.Registry.Default()
	themes := app.Registry.Themes()
	entries := make([]themeEntry, 0, len(themes))
	for _, t := range themes {
		entries = append(entries, newThemeEntry(t, def))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	return renderListTable(cmd, entries)
}

func newThemeEntry(t, def *theme.Theme) themeEntry {
	entry := themeEntry{Name: t.Name(), Default: t.Equal(def), Keys: len(t.Document())}
	if parent := t.Parent(); parent != nil {
		entry.Parent = parent.Name()
	}
	return entry
}

func renderListTable(cmd *cobra.Command, entries []themeEntry) error {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Default && !entries[j].Default
	})

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPARENT\tKEYS\tDEFAULT")
	for _, e := range entries {
		marker := ""
		if e.Default {
			marker = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", e.Name, valueOrFallback(e.Parent, "-"), e.Keys, marker)
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
