// Package screen holds the interfaces shared by the router and the screens
// it stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
)

// Screen is one page of the tutorial. View receives the area left over
// after the header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider screens replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer screens own single-letter keys while CapturesInput is true.
type InputCapturer interface {
	CapturesInput() bool
}

// Closer screens are told when they are popped off the stack.
type Closer interface {
	Close()
}
