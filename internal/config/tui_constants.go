package config

// Layout constants.
const (
	// ModalWidth is the outer width of the mute modal frame.
	ModalWidth = 64

	// InputWidth is the visible width of modal text inputs.
	InputWidth = 48

	// CompactModeThreshold triggers compact list rendering below this width.
	CompactModeThreshold = 80
)

// Display limits.
const (
	// MaxVisibleMutes limits rows shown in the list before scrolling.
	MaxVisibleMutes = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxSteamIDInputLength bounds the player identifier field (profile URLs included).
	MaxSteamIDInputLength = 128

	// MaxDurationDigits bounds the duration field.
	MaxDurationDigits = 9
)
