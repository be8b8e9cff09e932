// Package config loads the tvdeck configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tvdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	catalog_path = "~/.config/tvdeck/catalog.toml"
//	log_file     = "~/.local/state/tvdeck/tvdeck.log"
//	log_level    = "info"
//
//	[layout]
//	columns     = 4
//	hero_height = 14
//	row_height  = 7
//	look_ahead  = 3
//
//	[carousel]
//	interval = "5s"
//
//	[bridge]
//	kind    = ""            # "", "http" or "adb"
//	address = "127.0.0.1:8765"
//	device  = ""
//
//	[network]
//	probe_address  = "1.1.1.1:53"
//	probe_interval = "10s"
//
//	[weather]
//	refresh = "30m"
//
// Every field is optional. Durations use Go duration syntax. Tilde expansion
// is performed on catalog_path and log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML syntax errors ("parse config: ...")
//   - Values that are present but unusable: layout sizes below their
//     minimum (columns of 0 would leave the app grid without cells),
//     non-positive or malformed durations, an unknown bridge kind or log
//     level
//
// Invalid values are reported at startup rather than corrected silently.
package config
