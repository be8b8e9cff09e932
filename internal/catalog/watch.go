package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the catalog at path each time it changes and passes every
// valid result to onChange. A file that fails to parse is logged and the
// previous catalog stays in effect. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save by rename keep triggering reloads.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(Catalog), log logrus.FieldLogger) error {
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir, base := filepath.Dir(resolved), filepath.Base(resolved)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log = log.WithField("path", resolved)
	log.Debug("watching catalog")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base || !relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("catalog watcher error")

		case <-fire:
			fire = nil
			cat, err := Load(resolved)
			if err != nil {
				log.WithError(err).Warn("catalog reload failed, keeping previous catalog")
				continue
			}
			log.WithFields(logrus.Fields{
				"nav":    len(cat.Nav),
				"movies": len(cat.Movies),
				"apps":   len(cat.Apps),
			}).Info("catalog reloaded")
			onChange(cat)
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
