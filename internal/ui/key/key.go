package key

import "github.com/gdamore/tcell/v2"

/**
 * Keys and Runes!
 */

const (
	RuneQuit = 'q'
)

const (
	KeyCtrlC = tcell.KeyCtrlC
	KeyEsc   = tcell.KeyEsc
)
