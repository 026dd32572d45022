package state

import (
	"github.com/cbodonnell/gambit/pkg/engine"
)

// Cell provides shared access to the game state.
// Implementations must be thread-safe and must never let the guarded
// *engine.Game escape the callback it was passed to.
type Cell interface {
	// With runs fn while holding the lock, waiting for it if necessary.
	With(fn func(g *engine.Game))
	// TryWith runs fn only if the lock is free and reports whether it ran.
	TryWith(fn func(g *engine.Game)) bool
	// TryReset runs reset under the lock if it is free, then starts a new
	// generation. It reports whether the reset was applied.
	TryReset(reset func(g *engine.Game)) bool
	// Generation returns the number of resets applied so far.
	Generation() uint64
	// Session identifies the current generation in logs.
	Session() string
}
