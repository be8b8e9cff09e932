package catalog

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Featured: Featured{
			Title:       "The Last Frontier",
			Subtitle:    "Original Series",
			Description: "An epic journey into the unknown. Explore the limits of humanity in an adventure that defies time and space.",
			Year:        "2024",
			Rating:      "16+",
			Duration:    "1h 45min",
		},
		Nav: []NavItem{
			{Name: "Home", Glyph: "⌂"},
			{Name: "Search", Glyph: "⌕"},
			{Name: "Movies", Glyph: "▣"},
			{Name: "Shows", Glyph: "▭"},
			{Name: "Favorites", Glyph: "♥"},
			{Name: "Settings", Glyph: "⚙"},
		},
		Movies: []Movie{
			{
				Title:       "Dune: Part Two",
				Year:        "2024",
				Rating:      "8.8",
				Genre:       "Science Fiction",
				Description: "Paul Atreides unites with the Fremen while seeking revenge against the conspirators who destroyed his family.",
			},
			{
				Title:       "Oppenheimer",
				Year:        "2023",
				Rating:      "8.9",
				Genre:       "Historical Drama",
				Description: "The story of physicist J. Robert Oppenheimer and his role in developing the atomic bomb.",
			},
			{
				Title:       "Interstellar",
				Year:        "2014",
				Rating:      "8.7",
				Genre:       "Science Fiction",
				Description: "A team of explorers travels through a wormhole in space to save humanity.",
			},
			{
				Title:       "The Lord of the Rings",
				Year:        "2001",
				Rating:      "9.0",
				Genre:       "Epic Fantasy",
				Description: "A hobbit and his companions set out to destroy the One Ring and save Middle-earth.",
			},
			{
				Title:       "Gladiator II",
				Year:        "2024",
				Rating:      "8.2",
				Genre:       "Historical Action",
				Description: "The epic continuation of the saga of honor and vengeance in the Roman Empire.",
			},
			{
				Title:       "Avatar: The Way of Water",
				Year:        "2022",
				Rating:      "7.8",
				Genre:       "Science Fiction",
				Description: "Jake Sully and his family face new challenges as they explore the ocean regions of Pandora.",
			},
		},
		Apps: []App{
			{ID: "netflix", Name: "Netflix", Package: "com.netflix.mediaclient", Color: "#DC2626", Glyph: "▶"},
			{ID: "prime", Name: "Prime Video", Color: "#0EA5E9", Glyph: "▭"},
			{ID: "spotify", Name: "Spotify", Package: "com.spotify.music", Color: "#22C55E", Glyph: "♫"},
			{ID: "games", Name: "Games", Color: "#6366F1", Glyph: "◆"},
			{ID: "youtube", Name: "YouTube", Color: "#EF4444", Glyph: "▷"},
			{ID: "radio", Name: "Radio", Color: "#F97316", Glyph: "◉"},
			{ID: "disney", Name: "Disney+", Color: "#2563EB", Glyph: "✦"},
			{ID: "podcasts", Name: "Podcasts", Color: "#A855F7", Glyph: "◎"},
			{ID: "store", Name: "Store", Color: "#14B8A6", Glyph: "▤"},
			{ID: "browser", Name: "Browser", Color: "#64748B", Glyph: "◍"},
			{ID: "photos", Name: "Photos", Color: "#EC4899", Glyph: "▨"},
			{ID: "assistant", Name: "Assistant", Color: "#22D3EE", Glyph: "✱"},
		},
	}
}
