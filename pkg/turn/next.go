package turn

import (
	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/workers"
)

// Input is everything a transition may depend on, gathered by the
// controller before calling Next.
type Input struct {
	// Click is the logical square clicked this iteration, if any.
	Click *board.Square
	// Actor plays the side to move. Read in PhaseDecidingTurn only.
	Actor Actor
	// Legal reports whether the state's origin to Click is a legal move.
	// Read in PhaseAwaitingDestination only.
	Legal bool
	// HasHandle reports whether a dispatched computation is outstanding.
	HasHandle bool
	// Result is the polled computation result, if one arrived.
	Result *workers.Result
	// Stale marks Result as computed for a game that has since been reset.
	Stale bool
}

// Effect is a side effect requested by a transition.
type Effect interface {
	effect()
}

type (
	// SelectOrigin highlights Square and the squares reachable from it.
	SelectOrigin struct{ Square board.Square }
	// RejectMove aborts the half-turn.
	RejectMove struct{}
	// ApplyMove plays an interactive move.
	ApplyMove struct{ From, To board.Square }
	// Dispatch starts a computation for the side to move.
	Dispatch struct{}
	// RequestRedraw keeps the presentation polling while a computation runs.
	RequestRedraw struct{}
	// ClearHandle forgets the outstanding computation.
	ClearHandle struct{}
	// DiscardResult drops a result computed for a previous game.
	DiscardResult struct{ Result workers.Result }
	// ApplyReply plays a computed move.
	ApplyReply struct{ Reply engine.Reply }
	// SetStatus replaces the status line.
	SetStatus struct{ Text string }
)

func (SelectOrigin) effect()  {}
func (RejectMove) effect()    {}
func (ApplyMove) effect()     {}
func (Dispatch) effect()      {}
func (RequestRedraw) effect() {}
func (ClearHandle) effect()   {}
func (DiscardResult) effect() {}
func (ApplyReply) effect()    {}
func (SetStatus) effect()     {}

// Next is the turn state machine. It is total over (State, Input) and
// depends on nothing else.
func Next(s State, in Input) (State, []Effect) {
	switch s.Phase {
	case PhaseTerminal:
		return s, nil

	case PhaseDecidingTurn:
		if in.HasHandle {
			return State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare}, nil
		}
		if in.Actor == Computational {
			return State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare}, []Effect{Dispatch{}}
		}
		return State{Phase: PhaseAwaitingOrigin, Origin: board.NoSquare}, nil

	case PhaseAwaitingOrigin:
		if in.Click == nil {
			return s, nil
		}
		origin := *in.Click
		return State{Phase: PhaseAwaitingDestination, Origin: origin}, []Effect{SelectOrigin{Square: origin}}

	case PhaseAwaitingDestination:
		if in.Click == nil {
			return s, nil
		}
		destination := *in.Click
		if destination == s.Origin || !in.Legal {
			return deciding(), []Effect{RejectMove{}}
		}
		return deciding(), []Effect{ApplyMove{From: s.Origin, To: destination}}

	case PhaseWorkerInFlight:
		if !in.HasHandle {
			return deciding(), nil
		}
		if in.Result == nil {
			return s, []Effect{RequestRedraw{}}
		}
		return nextResult(*in.Result, in.Stale)
	}

	return deciding(), nil
}

func nextResult(result workers.Result, stale bool) (State, []Effect) {
	effects := []Effect{ClearHandle{}}
	if stale {
		return deciding(), append(effects, DiscardResult{Result: result})
	}

	terminal := State{Phase: PhaseTerminal, Origin: board.NoSquare}
	switch result.Reply.State {
	case engine.StateCheckmate:
		return terminal, append(effects, SetStatus{Text: StatusCheckmate})
	case engine.StateStalemate:
		return terminal, append(effects, SetStatus{Text: StatusStalemate})
	}

	effects = append(effects, ApplyReply{Reply: result.Reply})
	if IsImmediateMate(result.Reply) {
		return terminal, append(effects, SetStatus{Text: StatusCheckmate})
	}
	return deciding(), effects
}
