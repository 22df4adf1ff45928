// Package theme resolves dotted lookup keys against a theme document into
// typed presentation values: colors, fonts, geometry, and composite
// specifiers for labels, views, navigation bars, dashed borders and
// animations.
//
// Lookups fall back to the theme's parent for keys the theme does not
// define. Primitive getters never fail and return a documented default for
// absent or mistyped data. Colors, fonts, and view, label and navigation bar
// specifiers are memoized per theme; each cache can be cleared on its own.
//
// Typical use:
//
//	reg, err := loader.LoadFile("themes.yaml")
//	if err != nil {
//		return err
//	}
//	dark, _ := reg.Theme("Dark")
//	label := dark.MustTextLabelSpecifier("label", 0)
//	background := dark.Color("backgroundColor")
package theme
