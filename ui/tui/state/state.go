package state

import (
	"time"

	"carddrawer/internal/config"
	"carddrawer/internal/widget"
)

// AppState holds the current snapshot of the drawer for the views.
type AppState struct {
	Config     config.Config
	Frame      widget.Frame
	Labels     []string // localized, in card order
	TileHint   string
	Title      string
	ShowTrace  bool
	LastUpdate time.Time
}
