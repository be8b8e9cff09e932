package ui

import "time"

// Screen regions.
const (
	// HeaderHeight is the number of rows above the body.
	HeaderHeight = 1

	// FooterHeight is the number of rows below the body.
	FooterHeight = 1

	// RailCollapsedWidth is the nav rail width showing glyphs only.
	RailCollapsedWidth = 6

	// RailExpandedWidth is the nav rail width with labels.
	RailExpandedWidth = 18

	// RailTopPadding is the number of blank rows above the first nav entry.
	RailTopPadding = 1

	// RailItemHeight is the number of rows each nav entry occupies.
	RailItemHeight = 2
)

// Content area geometry.
const (
	// ContentPadding is the left and right margin inside the content area.
	ContentPadding = 2

	// CardGap is the horizontal space between app cards.
	CardGap = 2

	// MinCardWidth is the narrowest an app card is drawn.
	MinCardWidth = 10

	// ThumbWidth is the width of a carousel thumbnail chip.
	ThumbWidth = 18

	// ThumbGap is the space between carousel thumbnails.
	ThumbGap = 1

	// heroFooterLines is the fixed tail of the hero block:
	// thumbnails, dots, spacer and the apps heading.
	heroFooterLines = 4

	// ModalWidth is the width of centered overlays.
	ModalWidth = 52
)

// Timing constants.
const (
	// ClockInterval drives the header clock and snapshot refresh.
	ClockInterval = time.Second

	// FrameInterval is the delay between scroll animation frames.
	FrameInterval = 16 * time.Millisecond

	// ToastDuration is how long a footer notice stays visible.
	ToastDuration = 3 * time.Second

	// LaunchTimeout bounds a single app launch request.
	LaunchTimeout = 5 * time.Second
)
