// Package scroll keeps the dashboard viewport aligned with remote focus.
//
// Geometry turns a focused item into a vertical offset measured in terminal
// rows. Sync applies that offset to a Scroller and hands item focus to a
// Focuser. Animator is the Scroller the UI uses: it eases toward the most
// recent target one frame at a time, and a newer target replaces the old one
// immediately.
package scroll
