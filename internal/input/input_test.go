package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tvdeck/internal/focus"
)

type recordingHandler struct {
	dirs []focus.Direction
}

func (r *recordingHandler) Handle(dir focus.Direction) focus.Event {
	r.dirs = append(r.dirs, dir)
	return focus.Event{Kind: focus.EventMoved}
}

func TestKeyMap_Direction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want focus.Direction
		ok   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, focus.Up, true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, focus.Down, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, focus.Left, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, focus.Right, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, focus.Confirm, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, focus.Confirm, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 0, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Direction(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAdapter_DispatchConsumesDirections(t *testing.T) {
	a := NewAdapter(DefaultKeyMap())
	h := &recordingHandler{}
	sub := a.Subscribe(h)
	defer sub.Close()

	_, consumed := a.Dispatch(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, consumed)
	_, consumed = a.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, consumed)

	assert.Equal(t, []focus.Direction{focus.Down}, h.dirs)
}

func TestAdapter_CloseReleasesHandler(t *testing.T) {
	a := NewAdapter(DefaultKeyMap())
	h := &recordingHandler{}
	sub := a.Subscribe(h)
	require.True(t, sub.Active())

	sub.Close()
	sub.Close()
	assert.False(t, sub.Active())
	assert.False(t, a.Subscribed())

	_, consumed := a.Dispatch(tea.KeyMsg{Type: tea.KeyUp})
	assert.False(t, consumed)
	assert.Empty(t, h.dirs)
}

func TestAdapter_StaleSubscriptionCannotRelease(t *testing.T) {
	a := NewAdapter(DefaultKeyMap())
	old := a.Subscribe(&recordingHandler{})
	h := &recordingHandler{}
	current := a.Subscribe(h)

	assert.False(t, old.Active())
	old.Close()
	assert.True(t, current.Active())

	_, consumed := a.Dispatch(tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, consumed)
	assert.Equal(t, []focus.Direction{focus.Left}, h.dirs)
}

func TestAdapter_DrivesController(t *testing.T) {
	c, err := focus.NewController(focus.Layout{NavItems: 6, PrimaryItems: 6, AppItems: 12, AppColumns: 4})
	require.NoError(t, err)

	a := NewAdapter(DefaultKeyMap())
	sub := a.Subscribe(c)
	defer sub.Close()

	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyDown, tea.KeyUp} {
		_, consumed := a.Dispatch(tea.KeyMsg{Type: k})
		require.True(t, consumed)
	}
	assert.Equal(t, focus.AppGrid, c.Active())
	assert.Equal(t, 3, c.Index(focus.AppGrid))

	ev, consumed := a.Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, consumed)
	assert.Equal(t, focus.EventConfirmed, ev.Kind)
	assert.Equal(t, focus.Selection{Section: focus.AppGrid, Index: 3}, ev.Selection())
}

func TestSubscription_NilSafe(t *testing.T) {
	var s *Subscription
	s.Close()
	assert.False(t, s.Active())
}
