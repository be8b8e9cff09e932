// Package catalog holds the content shown on the dashboard: nav rail
// entries, the featured title, the movie carousel and the app grid.
//
// A built-in catalog is always available. Load reads a TOML file that
// replaces it section by section, and Watch reloads that file when it
// changes on disk so item counts can follow without restarting.
//
// Example catalog.toml:
//
//	[featured]
//	title = "The Last Frontier"
//	rating = "16+"
//
//	[[apps]]
//	id = "netflix"
//	name = "Netflix"
//	package = "com.netflix.mediaclient"
//	color = "#E50914"
//	glyph = "▶"
package catalog
