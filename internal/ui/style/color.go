package style

import "github.com/gdamore/tcell/v2"

/**
 * Styles and Colors!
 */

const (
	ColorDefault     = tcell.ColorDefault
	ColorWhite       = tcell.ColorWhite
	ColorPurple      = tcell.ColorMediumPurple
	ColorLightGreen  = tcell.ColorLightSeaGreen
	ColorMediumGreen = tcell.ColorMediumSeaGreen
	ColorOrange      = tcell.ColorOrange
	ColorRed         = tcell.ColorIndianRed
	ColorDimGrey     = tcell.ColorDimGrey
)

var (
	StyleDefault = tcell.StyleDefault
)
