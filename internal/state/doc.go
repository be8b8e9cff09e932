// Package state provides thread-safe ambient state for the dashboard.
//
// # Overview
//
// Background refreshers in package app write connectivity, weather and
// catalog updates into a Store. The UI reads a Snapshot on every tick and
// renders from it. Focus state is not kept here; it lives in the UI's focus
// controller and is never shared across goroutines.
//
// # Architecture
//
//	Producers (app):                  Consumer (ui):
//	┌──────────────────────┐         ┌──────────────────┐
//	│ probe network        │         │                  │
//	│ fetch weather        │         │                  │
//	│ reload catalog       │         │                  │
//	│      ↓               │         │                  │
//	│ store.Update*()      │────────→│ store.Snapshot() │
//	│      ↓               │ (mutex) │      ↓           │
//	│ wait / back off      │         │ render           │
//	└──────────────────────┘         └──────────────────┘
//
// # Update Semantics
//
// UpdateConnectivity counts consecutive probe failures. A success resets the
// count. IsOffline needs two failures in a row so a single dropped probe does
// not flash the offline overlay.
//
// UpdateWeather with an error keeps the previous weather and suggestion and
// records the error. SetCatalog bumps CatalogVersion so the UI can tell a
// reload apart from an unchanged catalog without comparing contents.
//
// # Copying
//
// Snapshot returns copies of every slice and a fresh error value, so callers
// may keep or modify the result freely.
//
// # Zero Value
//
// A zero Store is ready to use. Its snapshot is online, has no weather and
// carries an empty catalog at version 0.
package state
