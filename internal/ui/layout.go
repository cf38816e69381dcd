package ui

// Card layout.
const (
	// cardWidth is the inner width of the centred card.
	cardWidth = 64

	// reasonWidth is the visible width of the reason field.
	reasonWidth = 50

	// reasonCharLimit caps the reason text.
	reasonCharLimit = 120
)

// Text defaults.
const (
	defaultReason      = "Afk because of..."
	defaultWindowTitle = "AFK Screen"
	refreshLabel       = "refresh"
	updatedLayout      = "15:04:05"
)
