package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tvdeck/internal/catalog"
	"github.com/five82/tvdeck/internal/suggest"
)

// Snapshot represents the latest ambient data available to the UI.
type Snapshot struct {
	// Connectivity
	ConsecutiveFailures int // consecutive failed reachability probes
	LastProbe           time.Time
	LastError           error

	// Weather suggestion
	Weather        suggest.Weather
	Suggestion     suggest.Suggestion
	HasWeather     bool
	WeatherLoading bool
	WeatherError   error

	// Content
	Catalog        catalog.Catalog
	CatalogVersion uint64

	LastUpdated time.Time
}

// IsOffline returns true when the network has been unreachable for multiple
// probes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// UpdateConnectivity records the result of one reachability probe.
func (s *Store) UpdateConnectivity(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastProbe = now
	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetWeatherLoading marks a weather fetch as in flight.
func (s *Store) SetWeatherLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.WeatherLoading = true
	s.snapshot.LastUpdated = time.Now()
}

// UpdateWeather stores a finished weather fetch. When err is non-nil the
// previous weather is kept and the error is recorded.
func (s *Store) UpdateWeather(w suggest.Weather, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.WeatherLoading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.WeatherError = err
		return
	}
	s.snapshot.Weather = w
	s.snapshot.Suggestion = suggest.For(w.Condition)
	s.snapshot.HasWeather = true
	s.snapshot.WeatherError = nil
}

// SetCatalog replaces the catalog and bumps its version.
func (s *Store) SetCatalog(c catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Catalog = cloneCatalog(c)
	s.snapshot.CatalogVersion++
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = cloneCatalog(s.snapshot.Catalog)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	if s.snapshot.WeatherError != nil {
		snap.WeatherError = fmt.Errorf("%w", s.snapshot.WeatherError)
	}
	return snap
}

func cloneCatalog(c catalog.Catalog) catalog.Catalog {
	dup := c
	dup.Nav = cloneSlice(c.Nav)
	dup.Movies = cloneSlice(c.Movies)
	dup.Apps = cloneSlice(c.Apps)
	return dup
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
