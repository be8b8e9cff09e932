// Package input turns raw key presses into remote directions and delivers
// them to the focus controller.
//
// An Adapter has at most one live Subscription. Closing a subscription
// releases the adapter, after which keys are no longer consumed. A stale
// Subscription that was replaced by a newer one cannot release its
// successor.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tvdeck/internal/focus"
)

// Handler receives directions. *focus.Controller satisfies it.
type Handler interface {
	Handle(dir focus.Direction) focus.Event
}

// Adapter routes key messages to the subscribed Handler. It is not safe for
// concurrent use.
type Adapter struct {
	keys    KeyMap
	handler Handler
	current uint64
	nextID  uint64
}

// NewAdapter returns an adapter using keys.
func NewAdapter(keys KeyMap) *Adapter {
	return &Adapter{keys: keys}
}

// Keys returns the adapter's key map.
func (a *Adapter) Keys() KeyMap {
	return a.keys
}

// Subscribe attaches h, replacing any previous handler.
func (a *Adapter) Subscribe(h Handler) *Subscription {
	a.nextID++
	a.current = a.nextID
	a.handler = h
	return &Subscription{adapter: a, id: a.current}
}

// Subscribed reports whether a handler is attached.
func (a *Adapter) Subscribed() bool {
	return a.handler != nil
}

// Dispatch forwards msg to the handler. consumed is true when msg was a
// direction key and a handler received it; the caller must then stop any
// other handling of the key. Unknown keys are never consumed.
func (a *Adapter) Dispatch(msg tea.KeyMsg) (ev focus.Event, consumed bool) {
	if a.handler == nil {
		return focus.Event{}, false
	}
	dir, ok := a.keys.Direction(msg)
	if !ok {
		return focus.Event{}, false
	}
	return a.handler.Handle(dir), true
}

// Subscription is the scoped attachment of a Handler to an Adapter.
type Subscription struct {
	adapter *Adapter
	id      uint64
}

// Close detaches the handler. It is safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.adapter == nil {
		return
	}
	if s.adapter.current == s.id {
		s.adapter.handler = nil
		s.adapter.current = 0
	}
	s.adapter = nil
}

// Active reports whether this subscription still owns the adapter.
func (s *Subscription) Active() bool {
	return s != nil && s.adapter != nil && s.adapter.current == s.id
}
