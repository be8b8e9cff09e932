// Package app provides the orchestration layer for tvdeck.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the
// content catalog, the launch bridge, the background refreshers and the UI.
// It is the composition root: every dependency is built here and handed to
// the UI through ui.Options.
//
// # Components
//
//   - app.go: Options, LoadConfig and Run
//   - logging.go: logrus setup writing to the configured log file
//   - refresher.go: connectivity and weather refreshers with backoff
//
// # Lifecycle
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        read config.toml, apply CLI overrides
//	       ├─────> newLogger()          file logger
//	       ├─────> prefs.Load()         theme, hero mute
//	       ├─────> catalog.Load()       nav, movies, apps
//	       ├─────> bridge.New()         optional app launcher
//	       ├─────> errgroup
//	       │         ├─> network refresher
//	       │         ├─> weather refresher
//	       │         ├─> catalog.Watch()
//	       │         └─> ui.Run()       blocks until quit
//	       └─────> g.Wait()
//
// Quitting the UI cancels the group context, which stops the refreshers and
// the catalog watcher before Run returns. Cancelling the parent context (for
// example on SIGINT) stops everything including the UI.
//
// # Refresh Behavior
//
// Each refresher runs once at startup and then on its interval. After a
// failure it retries sooner, starting at 2s and doubling per consecutive
// failure, never waiting longer than its regular interval or 30s.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Invalid configuration
//   - A catalog file that exists but does not parse or validate
//   - An unknown bridge kind
//   - The log file cannot be opened
//
// Recoverable (logged):
//   - Probe and weather failures
//   - Catalog hot reload failures, including a missing catalog directory
//   - An unreachable HTTP bridge at startup
package app
