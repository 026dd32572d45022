package turn

import (
	"testing"

	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestReplyStatus(t *testing.T) {
	tests := []struct {
		name  string
		reply engine.Reply
		want  string
	}{
		{
			name:  "material score",
			reply: engine.Reply{Score: 35},
			want:  "1... e5 (scr: 35)",
		},
		{
			name:  "at the mate threshold",
			reply: engine.Reply{Score: engine.KingValueDiv2},
			want:  "1... e5 (scr: 10000)",
		},
		{
			name:  "mating",
			reply: engine.Reply{Score: engine.KingValue - 2, Distance: 4},
			want:  "1... e5 (scr: 19998) Checkmate in 1",
		},
		{
			name:  "being mated",
			reply: engine.Reply{Score: -(engine.KingValue - 3), Distance: 5},
			want:  "1... e5 (scr: -19997) Checkmate in 3",
		},
		{
			name:  "immediate mate has no countdown",
			reply: engine.Reply{Score: engine.KingValue, Distance: 2},
			want:  "1... e5 (scr: 20000)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplyStatus("1... e5", tt.reply))
		})
	}
}

func TestIsImmediateMate(t *testing.T) {
	assert.True(t, IsImmediateMate(engine.Reply{Score: engine.KingValue, Distance: 2}))
	assert.False(t, IsImmediateMate(engine.Reply{Score: engine.KingValue - 2, Distance: 4}))
	assert.False(t, IsImmediateMate(engine.Reply{Score: 0, Distance: 2}))
}
