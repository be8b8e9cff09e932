package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/five82/tvdeck/internal/netcheck"
	"github.com/five82/tvdeck/internal/state"
	"github.com/five82/tvdeck/internal/suggest"
)

const (
	defaultProbeInterval = 10 * time.Second
	defaultWeatherEvery  = 30 * time.Minute

	retryBase  = 2 * time.Second
	maxBackoff = 30 * time.Second
)

// Refreshers keep the ambient parts of the store current.
type Refreshers struct {
	Store         *state.Store
	Prober        netcheck.Prober
	ProbeInterval time.Duration
	Weather       suggest.Source
	WeatherEvery  time.Duration
	Log           logrus.FieldLogger
}

// Start launches one goroutine per configured refresher on g. They return
// when ctx is cancelled.
func (r Refreshers) Start(ctx context.Context, g *errgroup.Group) {
	if r.Prober != nil {
		g.Go(func() error {
			r.loop(ctx, "network", orDefault(r.ProbeInterval, defaultProbeInterval), r.probe)
			return nil
		})
	}
	if r.Weather != nil {
		g.Go(func() error {
			r.loop(ctx, "weather", orDefault(r.WeatherEvery, defaultWeatherEvery), r.fetchWeather)
			return nil
		})
	}
}

func (r Refreshers) probe(ctx context.Context) error {
	wasOffline := r.Store.Snapshot().IsOffline()
	err := r.Prober.Probe(ctx)
	if ctx.Err() != nil {
		return nil
	}
	r.Store.UpdateConnectivity(err)

	switch offline := r.Store.Snapshot().IsOffline(); {
	case offline && !wasOffline:
		r.Log.WithError(err).Warn("network offline")
	case !offline && wasOffline:
		r.Log.Info("network restored")
	}
	return err
}

func (r Refreshers) fetchWeather(ctx context.Context) error {
	r.Store.SetWeatherLoading()
	w, err := r.Weather.Current(ctx)
	if ctx.Err() != nil {
		return nil
	}
	r.Store.UpdateWeather(w, err)
	if err == nil {
		r.Log.WithFields(logrus.Fields{
			"condition":  w.Condition,
			"suggestion": suggest.For(w.Condition).Title,
		}).Debug("weather updated")
	}
	return err
}

// loop runs fn immediately and then every interval, retrying sooner with
// exponential backoff while fn fails.
func (r Refreshers) loop(ctx context.Context, name string, interval time.Duration, fn func(context.Context) error) {
	failures := 0
	for {
		if err := fn(ctx); err != nil {
			failures++
			r.Log.WithError(err).WithFields(logrus.Fields{
				"refresher": name,
				"failures":  failures,
			}).Debug("refresh failed")
		} else {
			failures = 0
		}

		timer := time.NewTimer(nextDelay(interval, failures))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	d := base << failures
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

// nextDelay is the wait before the next refresh: the regular interval after a
// success, a backoff no longer than interval after a failure.
func nextDelay(interval time.Duration, failures int) time.Duration {
	if failures <= 0 {
		return interval
	}
	if d := calculateBackoff(failures, retryBase); d < interval {
		return d
	}
	return interval
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
