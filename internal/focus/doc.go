// Package focus implements spatial focus navigation for the dashboard.
//
// # Overview
//
// The dashboard is split into three sections: the navigation rail on the left,
// the featured carousel (primary content) at the top, and the app grid below
// it. Exactly one section holds the remote focus at any time, and every
// section remembers its own active index.
//
// # Components
//
//   - index.go: Move, the 1-D index arithmetic with wrap/clamp/escape policies
//   - grid.go: Navigate, a pure function mapping a SectionState and a
//     Direction to an Outcome (move, switch section, confirm, or no-op)
//   - controller.go: Controller, the state machine that owns FocusState and
//     is the only place focus is mutated
//
// # Edge Policy
//
// One policy set is applied everywhere:
//
//	NavRail         Up/Down wrap     Left no-op        Right -> last content section
//	PrimaryContent  Right wraps      Left -> NavRail   Up no-op, Down -> AppGrid
//	AppGrid         Up on row 0 -> PrimaryContent, Left on column 0 -> NavRail,
//	                Right at row end or last item no-op, Down past last row no-op
//
// A Down move into a ragged gap (the cell below does not exist because the last
// row is short) is a no-op. Focus never snaps to the last item of that row.
//
// # Invariants
//
// For every section 0 <= ActiveIndex < ItemCount holds after every call on the
// Controller. Construction fails with ErrNoItems or ErrNoColumns instead of
// letting a zero count reach the index arithmetic.
//
// # Concurrency
//
// Controller is not safe for concurrent use. It is driven from the Bubble Tea
// update loop, which is single-threaded.
package focus
