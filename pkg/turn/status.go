package turn

import (
	"fmt"

	"github.com/cbodonnell/gambit/pkg/engine"
)

const (
	StatusInvalidMove = "invalid move, ignored."
	StatusCheckmate   = "Checkmate, game terminated!"
	StatusStalemate   = "Stalemate, game drawn!"
	StatusNewGame     = "New game"
	StatusThinking    = " ... one moment please, reply is:"
)

// IsImmediateMate reports whether the reply mates on the move.
func IsImmediateMate(r engine.Reply) bool {
	return r.Distance == 2 && r.Score == engine.KingValue
}

// ReplyStatus formats the status line for a computed reply that was
// described as description.
func ReplyStatus(description string, r engine.Reply) string {
	status := fmt.Sprintf("%s (scr: %d)", description, r.Score)
	if IsImmediateMate(r) || abs(r.Score) <= engine.KingValueDiv2 {
		return status
	}
	n := r.Distance/2 + 1
	if r.Score > 0 {
		n = r.Distance/2 - 1
	}
	return fmt.Sprintf("%s Checkmate in %d", status, n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
