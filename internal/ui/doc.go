// Package ui provides the terminal dashboard for tvdeck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program laid out like a TV launcher: a header with
// the clock and weather suggestion, a collapsible nav rail on the left, and
// a scrollable content area holding the hero carousel followed by the app
// grid. It is driven by arrow keys and enter, the way a TV remote drives a
// set-top box, with optional mouse support.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and the Run function
//   - render.go: Header, rail, hero, grid and footer rendering plus shared geometry
//   - mouse.go: Pointer hit-testing, hover and click handling
//   - carousel.go: Auto-advance timer that pauses while the carousel is focused or hovered
//   - modal.go: Movie detail dialog and the offline overlay
//   - help.go: Help overlay
//   - toast.go: Footer notices
//   - keys.go, theme.go, layout.go: Bindings, palettes and layout constants
//
// # Focus Flow
//
//  1. A key press goes through input.Adapter to the focus.Controller.
//  2. The resulting focus.Event is handled in afterFocus: confirm activates
//     the item, moves and switches re-render.
//  3. scroll.Sync mirrors the new focus into a scroll.Animator, which eases
//     the viewport toward the target one frame at a time. A newer request
//     invalidates frames still queued for an older one.
//  4. The carousel timer is re-armed or disarmed to match the controller.
//
// # Data Flow
//
// A one-second tick updates the clock and pulls a state.Snapshot. When the
// snapshot carries a new catalog version the focus sections are resized.
// Repeated failed network probes replace the whole screen with the offline
// overlay until a probe succeeds.
//
// # Key Bindings
//
//   - arrows: Move focus
//   - enter/space: Select (open details, select menu entry, launch app)
//   - m: Mute/unmute the hero
//   - T: Cycle theme
//   - ?: Toggle help
//   - esc: Close dialog
//   - q or Ctrl+C: Quit
package ui
