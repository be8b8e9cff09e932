package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// NavItem is one entry in the nav rail.
type NavItem struct {
	Name  string `toml:"name"`
	Glyph string `toml:"glyph"`
}

// Featured is the title promoted in the hero banner.
type Featured struct {
	Title       string `toml:"title"`
	Subtitle    string `toml:"subtitle"`
	Description string `toml:"description"`
	Year        string `toml:"year"`
	Rating      string `toml:"rating"`
	Duration    string `toml:"duration"`
}

// Movie is one carousel entry.
type Movie struct {
	Title       string `toml:"title"`
	Year        string `toml:"year"`
	Rating      string `toml:"rating"`
	Genre       string `toml:"genre"`
	Description string `toml:"description"`
}

// App is one tile in the app grid. Package is the launchable identifier; an
// empty Package means the app cannot be opened through a bridge.
type App struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Package string `toml:"package,omitempty"`
	Color   string `toml:"color"`
	Glyph   string `toml:"glyph"`
}

// Launchable reports whether the app carries a package name.
func (a App) Launchable() bool {
	return strings.TrimSpace(a.Package) != ""
}

// Catalog is the full dashboard content.
type Catalog struct {
	Featured Featured  `toml:"featured"`
	Nav      []NavItem `toml:"nav"`
	Movies   []Movie   `toml:"movies"`
	Apps     []App     `toml:"apps"`
}

var (
	// ErrEmptySection is returned when a catalog section has no entries.
	ErrEmptySection = errors.New("catalog section is empty")
	// ErrDuplicateApp is returned when two apps share an id.
	ErrDuplicateApp = errors.New("duplicate app id")
)

// Validate checks that every navigable section has entries and app ids are
// unique.
func (c Catalog) Validate() error {
	if len(c.Nav) == 0 {
		return fmt.Errorf("nav: %w", ErrEmptySection)
	}
	if len(c.Movies) == 0 {
		return fmt.Errorf("movies: %w", ErrEmptySection)
	}
	if len(c.Apps) == 0 {
		return fmt.Errorf("apps: %w", ErrEmptySection)
	}
	seen := make(map[string]struct{}, len(c.Apps))
	for i, app := range c.Apps {
		id := strings.TrimSpace(app.ID)
		if id == "" {
			return fmt.Errorf("apps[%d]: missing id", i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("apps[%d] %q: %w", i, id, ErrDuplicateApp)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// App returns the app at index i.
func (c Catalog) App(i int) (App, bool) {
	if i < 0 || i >= len(c.Apps) {
		return App{}, false
	}
	return c.Apps[i], true
}

// Movie returns the movie at index i.
func (c Catalog) Movie(i int) (Movie, bool) {
	if i < 0 || i >= len(c.Movies) {
		return Movie{}, false
	}
	return c.Movies[i], true
}

// NavEntry returns the nav item at index i.
func (c Catalog) NavEntry(i int) (NavItem, bool) {
	if i < 0 || i >= len(c.Nav) {
		return NavItem{}, false
	}
	return c.Nav[i], true
}

// Load reads the catalog at path. A missing file yields Default. Sections
// absent from the file keep their default entries.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Catalog{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(bytes)
}

// Parse decodes TOML catalog data on top of Default.
func Parse(data []byte) (Catalog, error) {
	var raw Catalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	cat := Default()
	if raw.Featured.Title != "" {
		cat.Featured = raw.Featured
	}
	if len(raw.Nav) > 0 {
		cat.Nav = raw.Nav
	}
	if len(raw.Movies) > 0 {
		cat.Movies = raw.Movies
	}
	if len(raw.Apps) > 0 {
		cat.Apps = raw.Apps
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

// Marshal encodes c as TOML.
func Marshal(c Catalog) ([]byte, error) {
	bytes, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return bytes, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
