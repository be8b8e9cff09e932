package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Config is the effective tvdeck configuration.
type Config struct {
	CatalogPath string
	LogFile     string
	LogLevel    logrus.Level

	Layout   Layout
	Carousel Carousel
	Bridge   Bridge
	Network  Network
	Weather  Weather
}

// Layout sizes the dashboard in terminal cells.
type Layout struct {
	Columns    int // app grid columns
	HeroHeight int // rows above the app grid
	RowHeight  int // rows per app grid row
	LookAhead  int // rows of the previous grid row kept in view
}

// Carousel controls featured movie rotation.
type Carousel struct {
	Interval time.Duration
}

// Bridge selects the native app launcher.
type Bridge struct {
	Kind    string // "", "http" or "adb"
	Address string // companion service host:port for kind "http"
	Device  string // adb serial for kind "adb"
}

// Network controls the reachability probe.
type Network struct {
	ProbeAddress  string
	ProbeInterval time.Duration
}

// Weather controls the suggestion refresh.
type Weather struct {
	Refresh time.Duration
}

const (
	defaultConfigPath    = "~/.config/tvdeck/config.toml"
	defaultCatalogPath   = "~/.config/tvdeck/catalog.toml"
	defaultLogFile       = "~/.local/state/tvdeck/tvdeck.log"
	defaultLogLevel      = logrus.InfoLevel
	defaultColumns       = 4
	defaultHeroHeight    = 14
	defaultRowHeight     = 7
	defaultLookAhead     = 3
	defaultInterval      = 5 * time.Second
	defaultBridgeAddress = "127.0.0.1:8765"
	defaultProbeAddress  = "1.1.1.1:53"
	defaultProbeInterval = 10 * time.Second
	defaultWeather       = 30 * time.Minute
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CatalogPath: mustExpand(defaultCatalogPath),
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
		Layout: Layout{
			Columns:    defaultColumns,
			HeroHeight: defaultHeroHeight,
			RowHeight:  defaultRowHeight,
			LookAhead:  defaultLookAhead,
		},
		Carousel: Carousel{Interval: defaultInterval},
		Bridge:   Bridge{Address: defaultBridgeAddress},
		Network: Network{
			ProbeAddress:  defaultProbeAddress,
			ProbeInterval: defaultProbeInterval,
		},
		Weather: Weather{Refresh: defaultWeather},
	}
}

type rawConfig struct {
	CatalogPath string `toml:"catalog_path"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`

	Layout struct {
		Columns    *int `toml:"columns"`
		HeroHeight *int `toml:"hero_height"`
		RowHeight  *int `toml:"row_height"`
		LookAhead  *int `toml:"look_ahead"`
	} `toml:"layout"`

	Carousel struct {
		Interval string `toml:"interval"`
	} `toml:"carousel"`

	Bridge struct {
		Kind    string `toml:"kind"`
		Address string `toml:"address"`
		Device  string `toml:"device"`
	} `toml:"bridge"`

	Network struct {
		ProbeAddress  string `toml:"probe_address"`
		ProbeInterval string `toml:"probe_interval"`
	} `toml:"network"`

	Weather struct {
		Refresh string `toml:"refresh"`
	} `toml:"weather"`
}

// Load locates and parses the tvdeck config, falling back to defaults when
// missing. Values that are present but invalid are errors.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve()
}

func (raw rawConfig) resolve() (Config, error) {
	cfg := Default()

	if p := strings.TrimSpace(raw.CatalogPath); p != "" {
		cfg.CatalogPath = mustExpand(p)
	}
	if p := strings.TrimSpace(raw.LogFile); p != "" {
		cfg.LogFile = mustExpand(p)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	ints := []struct {
		name  string
		value *int
		dest  *int
		min   int
	}{
		{"layout.columns", raw.Layout.Columns, &cfg.Layout.Columns, 1},
		{"layout.hero_height", raw.Layout.HeroHeight, &cfg.Layout.HeroHeight, 1},
		{"layout.row_height", raw.Layout.RowHeight, &cfg.Layout.RowHeight, 1},
		{"layout.look_ahead", raw.Layout.LookAhead, &cfg.Layout.LookAhead, 0},
	}
	for _, f := range ints {
		if f.value == nil {
			continue
		}
		if *f.value < f.min {
			return Config{}, fmt.Errorf("%s = %d, must be at least %d", f.name, *f.value, f.min)
		}
		*f.dest = *f.value
	}

	durations := []struct {
		name  string
		value string
		dest  *time.Duration
	}{
		{"carousel.interval", raw.Carousel.Interval, &cfg.Carousel.Interval},
		{"network.probe_interval", raw.Network.ProbeInterval, &cfg.Network.ProbeInterval},
		{"weather.refresh", raw.Weather.Refresh, &cfg.Weather.Refresh},
	}
	for _, f := range durations {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.name, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s = %s, must be positive", f.name, v)
		}
		*f.dest = d
	}

	switch kind := strings.ToLower(strings.TrimSpace(raw.Bridge.Kind)); kind {
	case "", "http", "adb":
		cfg.Bridge.Kind = kind
	default:
		return Config{}, fmt.Errorf("bridge.kind %q: want \"\", \"http\" or \"adb\"", raw.Bridge.Kind)
	}
	if addr := strings.TrimSpace(raw.Bridge.Address); addr != "" {
		cfg.Bridge.Address = addr
	}
	cfg.Bridge.Device = strings.TrimSpace(raw.Bridge.Device)

	if addr := strings.TrimSpace(raw.Network.ProbeAddress); addr != "" {
		cfg.Network.ProbeAddress = addr
	}

	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
