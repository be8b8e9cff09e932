package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/five82/tvdeck/internal/bridge"
	"github.com/five82/tvdeck/internal/catalog"
	"github.com/five82/tvdeck/internal/config"
	"github.com/five82/tvdeck/internal/netcheck"
	"github.com/five82/tvdeck/internal/prefs"
	"github.com/five82/tvdeck/internal/state"
	"github.com/five82/tvdeck/internal/suggest"
	"github.com/five82/tvdeck/internal/ui"
)

// BridgeDisabled as Options.BridgeKind turns the launcher off regardless of
// the config file.
const BridgeDisabled = "none"

// Options configure the tvdeck application.
type Options struct {
	ConfigPath  string
	CatalogPath string // overrides catalog_path when set
	BridgeKind  string // overrides [bridge] kind when set
	PrefsPath   string // empty uses default ~/.config/tvdeck/prefs.toml
	LogOutput   io.Writer

	runUI func(ui.Options) error
}

// LoadConfig reads the config file and applies the overrides in opts.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p := strings.TrimSpace(opts.CatalogPath); p != "" {
		cfg.CatalogPath = p
	}
	switch kind := strings.ToLower(strings.TrimSpace(opts.BridgeKind)); kind {
	case "":
	case BridgeDisabled:
		cfg.Bridge.Kind = bridge.KindNone
	default:
		cfg.Bridge.Kind = kind
	}
	return cfg, nil
}

// Run boots the tvdeck TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, opts.LogOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	launcher, err := bridge.New(cfg.Bridge.Kind, cfg.Bridge.Address, cfg.Bridge.Device)
	if err != nil {
		return fmt.Errorf("init bridge: %w", err)
	}
	checkBridge(ctx, launcher, logger)

	logger.WithFields(logrus.Fields{
		"catalog": cfg.CatalogPath,
		"bridge":  cfg.Bridge.Kind,
		"columns": cfg.Layout.Columns,
	}).Info("tvdeck starting")

	store := &state.Store{}
	store.SetCatalog(cat)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	refreshers := Refreshers{
		Store:         store,
		Prober:        netcheck.Dialer{Address: cfg.Network.ProbeAddress},
		ProbeInterval: cfg.Network.ProbeInterval,
		Weather:       suggest.NewSimulated(suggest.DefaultDelay, time.Now().UnixNano()),
		WeatherEvery:  cfg.Weather.Refresh,
		Log:           logger,
	}
	refreshers.Start(gctx, g)

	g.Go(func() error {
		err := catalog.Watch(gctx, cfg.CatalogPath, catalog.DefaultDebounce, store.SetCatalog, logger)
		if err != nil {
			logger.WithError(err).Warn("catalog hot reload disabled")
		}
		return nil
	})

	runUI := opts.runUI
	if runUI == nil {
		runUI = ui.Run
	}
	g.Go(func() error {
		defer cancel()
		return runUI(ui.Options{
			Context:   gctx,
			Store:     store,
			Config:    cfg,
			Launcher:  launcher,
			Logger:    logger,
			Prefs:     userPrefs,
			PrefsPath: opts.PrefsPath,
		})
	})

	err = g.Wait()
	logger.Info("tvdeck stopped")
	return err
}

func checkBridge(ctx context.Context, l bridge.Launcher, log logrus.FieldLogger) {
	client, ok := l.(*bridge.Client)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	status, err := client.Status(ctx)
	if err != nil {
		log.WithError(err).Warn("launch bridge not reachable, app launches may fail")
		return
	}
	log.WithFields(logrus.Fields{
		"device":  status.Device,
		"version": status.Version,
	}).Info("launch bridge connected")
}
