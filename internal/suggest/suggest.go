// Package suggest picks a movie to recommend from the current weather.
//
// Weather is supplied by a Source. Simulated is the only Source today: it
// waits a short while and reports a random condition.
package suggest

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Condition is a coarse weather condition.
type Condition string

const (
	Sunny  Condition = "sunny"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Snowy  Condition = "snowy"
	Windy  Condition = "windy"
)

// Conditions lists every condition.
func Conditions() []Condition {
	return []Condition{Sunny, Cloudy, Rainy, Snowy, Windy}
}

// Weather is one observation.
type Weather struct {
	Condition   Condition
	Temperature int // degrees Celsius
	Description string
}

// Suggestion is a movie recommended for some weather.
type Suggestion struct {
	Title  string
	Reason string
	Genre  string
}

var (
	temperatures = map[Condition]int{
		Sunny: 28, Cloudy: 22, Rainy: 18, Snowy: 2, Windy: 15,
	}
	descriptions = map[Condition]string{
		Sunny:  "Sunny",
		Cloudy: "Cloudy",
		Rainy:  "Rainy",
		Snowy:  "Snowing",
		Windy:  "Windy",
	}
	suggestions = map[Condition]Suggestion{
		Sunny: {
			Title:  "Mamma Mia!",
			Reason: "A sunny day calls for a cheerful musical comedy!",
			Genre:  "Musical Comedy",
		},
		Cloudy: {
			Title:  "Blade Runner 2049",
			Reason: "Grey skies suit contemplative science fiction.",
			Genre:  "Science Fiction",
		},
		Rainy: {
			Title:  "Singin' in the Rain",
			Reason: "Rain outside? Time for a cosy classic!",
			Genre:  "Classic Musical",
		},
		Snowy: {
			Title:  "Frozen II",
			Reason: "Snow falling? Perfect for an icy adventure!",
			Genre:  "Animation",
		},
		Windy: {
			Title:  "The Wizard of Oz",
			Reason: "Strong winds call for a magical adventure!",
			Genre:  "Classic Fantasy",
		},
	}
)

// WeatherFor returns the canonical observation for c.
func WeatherFor(c Condition) Weather {
	return Weather{Condition: c, Temperature: temperatures[c], Description: descriptions[c]}
}

// For returns the suggestion for c. Unknown conditions get the sunny pick.
func For(c Condition) Suggestion {
	if s, ok := suggestions[c]; ok {
		return s
	}
	return suggestions[Sunny]
}

// Source reports the current weather.
type Source interface {
	Current(ctx context.Context) (Weather, error)
}

// DefaultDelay is how long Simulated pretends to fetch.
const DefaultDelay = 1500 * time.Millisecond

// Simulated is a Source that returns a random condition after Delay.
type Simulated struct {
	Delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated returns a simulated source seeded with seed.
func NewSimulated(delay time.Duration, seed int64) *Simulated {
	return &Simulated{Delay: delay, rng: rand.New(rand.NewSource(seed))}
}

// Current implements Source. It returns ctx.Err() if ctx ends first.
func (s *Simulated) Current(ctx context.Context) (Weather, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Weather{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Weather{}, err
	}

	s.mu.Lock()
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	all := Conditions()
	c := all[s.rng.Intn(len(all))]
	s.mu.Unlock()

	return WeatherFor(c), nil
}
