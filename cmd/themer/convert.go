package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/internal/document"
	"github.com/alexisbeaulieu97/themer/pkg/loader"
)

type convertOptions struct {
	format string
}

func newConvertCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <output>",
		Short: "Rewrite the theme document as YAML or a property list",
		Long:  "Rewrite the theme document as YAML or an XML property list. Use - as output to write to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: yaml or plist (defaults to the output extension)")

	return cmd
}

func runConvert(cmd *cobra.Command, rootFlags *rootFlags, opts *convertOptions, output string) error {
	format, err := convertFormat(opts.format, output)
	if err != nil {
		return newCommandError("convert", output, err, "Pass --format yaml or --format plist.")
	}

	settings, err := loadSettings(cmd, rootFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, settings)
	if err != nil {
		return err
	}

	source := settings.Themes.File
	doc, err := document.Decode(source)
	if err != nil {
		return newCommandError("convert", source, err, "Run 'themer validate' to check the document.")
	}
	// Refuse to convert documents the loader would reject.
	if _, err := loader.Load(doc, loader.WithStrictColors(settings.Themes.StrictColors)); err != nil {
		return newCommandError("convert", source, err, "Run 'themer validate' to check the document.")
	}

	data, err := document.Encode(doc, format)
	if err != nil {
		return newCommandError("convert", output, err, "Pass --format yaml or --format plist.")
	}

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return newCommandError("convert", output, err, "Check that the output directory exists and is writable.")
	}

	log.WithFields(map[string]any{"source": source, "output": output, "format": string(format)}).Info("theme document converted")
	return nil
}

func convertFormat(flag, output string) (document.Format, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "yaml", "yml":
		return document.FormatYAML, nil
	case "plist":
		return document.FormatPlist, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported output format %q", flag)
	}
	if output == "-" {
		return document.FormatYAML, nil
	}
	format, err := document.FormatForPath(output)
	if err != nil {
		return "", err
	}
	if format == document.FormatJSON {
		return "", fmt.Errorf("json output is not supported")
	}
	return format, nil
}
