// Package bridge opens native apps on the host device.
//
// # Overview
//
// The dashboard can run on a TV box that exposes a launch capability, or on a
// plain terminal that has none. Launcher is that capability. It is optional:
// when no launcher is configured, selecting an app is logged and reported to
// the user, and nothing else happens.
//
// # Implementations
//
//   - client.go: Client, an HTTP launcher for a companion service running on
//     the device
//   - adb.go: ADB, a launcher that starts apps through `adb shell monkey`
//
// # Companion API
//
// Client speaks a small JSON API:
//
//	GET  /api/status      -> {"device": "...", "version": "..."}
//	POST /api/apps/open   <- {"package": "com.netflix.mediaclient"}
//
// Any status of 400 or above is an error.
//
// # Activation
//
// Activate is what the UI calls on Confirm in the app grid. It never returns
// an error. The Outcome tells the caller what to show, and every outcome other
// than Launched is logged at warn level with the app id and package.
//
// # Configuration
//
// New picks a launcher from the [bridge] config table:
//
//	kind = ""      no launcher
//	kind = "http"  Client against address
//	kind = "adb"   ADB, optionally pinned to device (adb serial)
package bridge
