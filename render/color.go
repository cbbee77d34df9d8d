package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
)

// RgbBackground is the arena background
var RgbBackground = constants.BackgroundColor

// DefaultStyle paints the arena background with no glyph
var DefaultStyle = tcell.StyleDefault.Background(RGBAToTcell(RgbBackground))

// RGBAToTcell converts a color to a true-color tcell color; alpha is ignored
func RGBAToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FgStyle is the default style with the given foreground
func FgStyle(c color.RGBA) tcell.Style {
	return DefaultStyle.Foreground(RGBAToTcell(c))
}
