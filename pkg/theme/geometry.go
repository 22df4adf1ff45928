package theme

import "github.com/alexisbeaulieu97/themer/internal/coerce"

// Point is a position read from {x, y}.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a dimension read from {width, height}.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EdgeInsets is padding read from {left, top, right, bottom}.
type EdgeInsets struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// IsZero reports whether every inset is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

func pointFromMap(m map[string]any) Point {
	return Point{X: coerce.Float(m["x"]), Y: coerce.Float(m["y"])}
}

func sizeFromMap(m map[string]any) Size {
	return Size{Width: coerce.Float(m["width"]), Height: coerce.Float(m["height"])}
}

func edgeInsetsFromMap(m map[string]any) EdgeInsets {
	return EdgeInsets{
		Top:    coerce.Float(m["top"]),
		Left:   coerce.Float(m["left"]),
		Bottom: coerce.Float(m["bottom"]),
		Right:  coerce.Float(m["right"]),
	}
}
