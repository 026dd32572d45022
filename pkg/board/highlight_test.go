package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlights_MirrorIsItsOwnInverse(t *testing.T) {
	var h Highlights
	h[0] = TagSelected
	h[9] = TagReachable
	h[35] = TagLastMove
	h[63] = TagReachable
	before := h

	h.Mirror()
	assert.NotEqual(t, before, h)
	assert.Equal(t, TagSelected, h[63])
	assert.Equal(t, TagReachable, h[0])

	h.Mirror()
	assert.Equal(t, before, h)
}

func TestSelection(t *testing.T) {
	origin := NewSquare(6, 4)
	reachable := []Square{NewSquare(5, 4), NewSquare(4, 4)}

	tests := []struct {
		name    string
		rotated bool
		want    map[Square]Tag
	}{
		{
			name:    "upright",
			rotated: false,
			want: map[Square]Tag{
				origin:       TagSelected,
				reachable[0]: TagReachable,
				reachable[1]: TagReachable,
			},
		},
		{
			name:    "rotated",
			rotated: true,
			want: map[Square]Tag{
				origin.Mirror():       TagSelected,
				reachable[0].Mirror(): TagReachable,
				reachable[1].Mirror(): TagReachable,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Selection(origin, reachable, tt.rotated)
			for sq := Square(0); sq < Squares; sq++ {
				assert.Equal(t, tt.want[sq], h[sq], "square %s", sq)
			}
		})
	}
}

func TestSelection_noDestinations(t *testing.T) {
	origin := NewSquare(0, 0)
	h := Selection(origin, nil, false)
	assert.Equal(t, 1, h.Count(TagSelected))
	assert.Equal(t, Squares-1, h.Count(TagNone))
}

func TestLastMove(t *testing.T) {
	h := LastMove(NewSquare(6, 4), NewSquare(4, 4), false)
	assert.Equal(t, 2, h.Count(TagLastMove))
	assert.Equal(t, TagLastMove, h[NewSquare(6, 4)])
	assert.Equal(t, TagLastMove, h[NewSquare(4, 4)])

	h = LastMove(NewSquare(6, 4), NewSquare(4, 4), true)
	assert.Equal(t, 2, h.Count(TagLastMove))
	assert.Equal(t, TagLastMove, h[NewSquare(1, 3)])
	assert.Equal(t, TagLastMove, h[NewSquare(3, 3)])
}

func TestTracker(t *testing.T) {
	tracker := NewTracker(false)
	_, ok := tracker.Selected()
	assert.False(t, ok)

	origin := NewSquare(7, 6)
	tracker.Select(origin, []Square{NewSquare(5, 5), NewSquare(5, 7)})
	selected, ok := tracker.Selected()
	assert.True(t, ok)
	assert.Equal(t, origin, selected)
	assert.Equal(t, 2, tracker.Highlights().Count(TagReachable))

	// rotating keeps the tags on the squares they describe
	before := tracker.Highlights()
	tracker.Rotate()
	assert.True(t, tracker.Rotated())
	assert.Equal(t, TagSelected, tracker.Highlights()[origin.Mirror()])
	tracker.Rotate()
	assert.False(t, tracker.Rotated())
	assert.Equal(t, before, tracker.Highlights())

	tracker.Complete(origin, NewSquare(5, 5))
	_, ok = tracker.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, tracker.Highlights().Count(TagLastMove))
	assert.Equal(t, 0, tracker.Highlights().Count(TagReachable))

	tracker.Reset()
	assert.Equal(t, Highlights{}, tracker.Highlights())
}
