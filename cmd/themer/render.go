package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themer/internal/render"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

const (
	kindLabel  = "label"
	kindView   = "view"
	kindNavBar = "navbar"
	kindBorder = "border"
)

type renderOptions struct {
	kind       string
	adjust     float64
	width      int
	background string
	buttons    []string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <key> <text>",
		Short: "Preview a specifier in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindLabel, "Specifier kind: label, view, navbar or border")
	cmd.Flags().Float64Var(&opts.adjust, "adjust", 0, "Point size adjustment for labels and navigation bars")
	cmd.Flags().IntVar(&opts.width, "width", 40, "Navigation bar width in columns")
	cmd.Flags().StringVar(&opts.background, "background", "#000000", "Hex color translucent colors are blended onto")
	cmd.Flags().StringSliceVar(&opts.buttons, "button", nil, "Navigation bar button titles")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, key, text string) error {
	background, err := theme.ParseHex(opts.background)
	if err != nil {
		return newCommandError("render", "parsing --background", err, "Use a hex color such as #1E1E1E.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	t, err := app.Theme()
	if err != nil {
		return err
	}

	renderer := render.New(render.WithBackground(background))
	out, err := renderSpecifier(renderer, t, opts, key, text)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("%s %s from theme %s", opts.kind, key, t.Name()), err, "Check that the key holds a specifier of the requested kind.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func renderSpecifier(r *render.Renderer, t *theme.Theme, opts *renderOptions, key, text string) (string, error) {
	switch strings.ToLower(opts.kind) {
	case kindLabel:
		spec, err := t.LookupTextLabelSpecifier(key, opts.adjust)
		if err != nil {
			return "", err
		}
		return r.Label(spec, text), nil
	case kindView:
		spec, err := t.LookupViewSpecifier(key)
		if err != nil {
			return "", err
		}
		return r.View(spec, text), nil
	case kindNavBar:
		spec, err := t.LookupNavigationBarSpecifier(key, opts.adjust)
		if err != nil {
			return "", err
		}
		return r.NavigationBar(spec, opts.width, text, opts.buttons...), nil
	case kindBorder:
		spec, err := t.LookupDashedBorderSpecifier(key)
		if err != nil {
			return "", err
		}
		return r.Bordered(spec, text), nil
	default:
		return "", fmt.Errorf("unknown kind %q", opts.kind)
	}
}
