package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/tvdeck/internal/bridge"
	"github.com/five82/tvdeck/internal/catalog"
)

// ErrUnknownApp is returned by Launch when no catalog app has the given id.
var ErrUnknownApp = errors.New("unknown app")

// DumpCatalog returns the effective catalog as TOML: the configured file
// layered over the built-in defaults.
func DumpCatalog(opts Options) ([]byte, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.Marshal(cat)
}

// Launch opens one catalog app through the configured bridge without
// starting the dashboard.
func Launch(ctx context.Context, opts Options, appID string) (bridge.Outcome, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return bridge.Failed, err
	}

	logger, closeLog, err := newLogger(cfg, opts.LogOutput)
	if err != nil {
		return bridge.Failed, err
	}
	defer closeLog()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return bridge.Failed, fmt.Errorf("load catalog: %w", err)
	}

	target, ok := findApp(cat, appID)
	if !ok {
		return bridge.Failed, fmt.Errorf("%w: %q", ErrUnknownApp, appID)
	}

	launcher, err := bridge.New(cfg.Bridge.Kind, cfg.Bridge.Address, cfg.Bridge.Device)
	if err != nil {
		return bridge.Failed, fmt.Errorf("init bridge: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"app":    target.ID,
		"bridge": cfg.Bridge.Kind,
	}).Debug("launching from command line")
	return bridge.Activate(ctx, launcher, target, logger), nil
}

func findApp(cat catalog.Catalog, id string) (catalog.App, bool) {
	id = strings.TrimSpace(id)
	for _, a := range cat.Apps {
		if strings.EqualFold(a.ID, id) {
			return a, true
		}
	}
	return catalog.App{}, false
}
