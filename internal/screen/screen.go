package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// KeyCatcher is an optional interface for screens that consume keys the
// application would otherwise handle, such as Esc while a text input is
// focused.
type KeyCatcher interface {
	WantsKey(key string) bool
}

// Closer is an optional interface for screens that need to run cleanup
// when they are popped off the navigation stack, such as ending a
// study timer.
type Closer interface {
	Close() tea.Cmd
}
