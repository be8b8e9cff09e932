package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		delta       int
		count       int
		policy      EdgePolicy
		want        int
		wantEscaped bool
	}{
		{"inside forward", 2, 1, 6, EdgeWrap, 3, false},
		{"inside backward", 2, -1, 6, EdgeClamp, 1, false},
		{"wrap from first", 0, -1, 6, EdgeWrap, 5, false},
		{"wrap from last", 5, 1, 6, EdgeWrap, 0, false},
		{"wrap large delta", 1, -8, 6, EdgeWrap, 5, false},
		{"clamp at first", 0, -1, 6, EdgeClamp, 0, false},
		{"clamp at last", 5, 1, 6, EdgeClamp, 5, false},
		{"escape at first", 0, -1, 6, EdgeEscape, 0, true},
		{"escape at last", 5, 1, 6, EdgeEscape, 5, true},
		{"single item wraps onto itself", 0, 1, 1, EdgeWrap, 0, false},
		{"empty collection", 3, 1, 0, EdgeWrap, 0, false},
		{"out of range current is clamped first", 9, 0, 6, EdgeClamp, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, escaped := Move(tt.current, tt.delta, tt.count, tt.policy)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEscaped, escaped)
		})
	}
}

func TestMove_AlwaysInBounds(t *testing.T) {
	for count := 1; count <= 7; count++ {
		for current := 0; current < count; current++ {
			for delta := -9; delta <= 9; delta++ {
				for _, p := range []EdgePolicy{EdgeClamp, EdgeWrap, EdgeEscape} {
					got, _ := Move(current, delta, count, p)
					if got < 0 || got >= count {
						t.Fatalf("Move(%d, %d, %d, %s) = %d, out of range", current, delta, count, p, got)
					}
				}
			}
		}
	}
}
