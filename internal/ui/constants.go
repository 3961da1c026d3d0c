package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "×"
	IconStar      = "★"
	IconStarEmpty = "☆"
	IconDelete    = "🗑"
	IconEdit      = "✎"
	IconAdd       = "+"
	IconReload    = "⟳"
	IconSearch    = "🔍"
)

// Text fragments
const (
	DashPlaceholder = "—"
	BannerSeparator = ": "
)

// Layout sizing (note cards / sections)
const (
	NoteCardWidth  float32 = 260
	NoteCardHeight float32 = 220

	SwatchSize     float32 = 18
	CardSwatchSize float32 = 14

	NoteCardCornerRadius float32 = 8
	SwatchCornerRadius   float32 = 4

	ContentEntryRows = 4

	WindowWidth  float32 = 920
	WindowHeight float32 = 640
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Fallback when settings are unavailable
const (
	DefaultBannerAutoHide = 3 * time.Second
)
