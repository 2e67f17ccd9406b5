package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconUnread   = "●"
	IconFlag     = "⚑"
	IconEdit     = "✎"
	IconReset    = "↺"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	TimeLayout         = "Jan 2 15:04"
)

// Layout sizing
const (
	RowMinWidth  float32 = 300
	RowDefaultH  float32 = 72
	SeparatorH   float32 = 1
	CellPaddingX float32 = 12

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileRowDefaultH  float32 = 88
)

// Toast notification sizing and behavior
const (
	ToastAutoHide = 3 * time.Second
)

// Haptic pulse
const (
	HapticPulseDuration = 120 * time.Millisecond
	HapticPulseAlpha    = 96
)

// Gesture thresholds for raw touch input
const (
	DefaultTapSlop           float32 = 10.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)
