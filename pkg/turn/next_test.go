package turn

import (
	"testing"

	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/workers"
	"github.com/stretchr/testify/assert"
)

func square(row, col int) *board.Square {
	sq := board.NewSquare(row, col)
	return &sq
}

func TestNext(t *testing.T) {
	e2, e4 := board.NewSquare(6, 4), board.NewSquare(4, 4)
	reply := engine.Reply{From: e2, To: e4, Score: 30}
	mate := engine.Reply{From: e2, To: e4, Score: engine.KingValue, Distance: 2}

	tests := []struct {
		name        string
		state       State
		input       Input
		wantState   State
		wantEffects []Effect
	}{
		{
			name:      "terminal absorbs clicks",
			state:     State{Phase: PhaseTerminal, Origin: board.NoSquare},
			input:     Input{Click: square(6, 4)},
			wantState: State{Phase: PhaseTerminal, Origin: board.NoSquare},
		},
		{
			name:      "terminal absorbs results",
			state:     State{Phase: PhaseTerminal, Origin: board.NoSquare},
			input:     Input{HasHandle: true, Result: &workers.Result{Reply: reply}},
			wantState: State{Phase: PhaseTerminal, Origin: board.NoSquare},
		},
		{
			name:      "interactive side to move",
			state:     deciding(),
			input:     Input{Actor: Interactive},
			wantState: State{Phase: PhaseAwaitingOrigin, Origin: board.NoSquare},
		},
		{
			name:        "computational side to move dispatches",
			state:       deciding(),
			input:       Input{Actor: Computational},
			wantState:   State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			wantEffects: []Effect{Dispatch{}},
		},
		{
			name:      "outstanding handle blocks a new dispatch",
			state:     deciding(),
			input:     Input{Actor: Computational, HasHandle: true},
			wantState: State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
		},
		{
			name:      "awaiting origin without click",
			state:     State{Phase: PhaseAwaitingOrigin, Origin: board.NoSquare},
			wantState: State{Phase: PhaseAwaitingOrigin, Origin: board.NoSquare},
		},
		{
			name:        "origin selected",
			state:       State{Phase: PhaseAwaitingOrigin, Origin: board.NoSquare},
			input:       Input{Click: square(6, 4)},
			wantState:   State{Phase: PhaseAwaitingDestination, Origin: e2},
			wantEffects: []Effect{SelectOrigin{Square: e2}},
		},
		{
			name:      "awaiting destination without click",
			state:     State{Phase: PhaseAwaitingDestination, Origin: e2},
			wantState: State{Phase: PhaseAwaitingDestination, Origin: e2},
		},
		{
			name:        "destination equals origin",
			state:       State{Phase: PhaseAwaitingDestination, Origin: e2},
			input:       Input{Click: square(6, 4), Legal: true},
			wantState:   deciding(),
			wantEffects: []Effect{RejectMove{}},
		},
		{
			name:        "illegal destination",
			state:       State{Phase: PhaseAwaitingDestination, Origin: e2},
			input:       Input{Click: square(3, 4)},
			wantState:   deciding(),
			wantEffects: []Effect{RejectMove{}},
		},
		{
			name:        "legal destination",
			state:       State{Phase: PhaseAwaitingDestination, Origin: e2},
			input:       Input{Click: square(4, 4), Legal: true},
			wantState:   deciding(),
			wantEffects: []Effect{ApplyMove{From: e2, To: e4}},
		},
		{
			name:      "missing handle",
			state:     State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:     Input{},
			wantState: deciding(),
		},
		{
			name:        "waiting on computation",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true},
			wantState:   State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			wantEffects: []Effect{RequestRedraw{}},
		},
		{
			name:        "reply applied",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true, Result: &workers.Result{Reply: reply}},
			wantState:   deciding(),
			wantEffects: []Effect{ClearHandle{}, ApplyReply{Reply: reply}},
		},
		{
			name:        "stale reply discarded",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true, Result: &workers.Result{Reply: reply, Generation: 1}, Stale: true},
			wantState:   deciding(),
			wantEffects: []Effect{ClearHandle{}, DiscardResult{Result: workers.Result{Reply: reply, Generation: 1}}},
		},
		{
			name:        "checkmated",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true, Result: &workers.Result{Reply: engine.Reply{State: engine.StateCheckmate}}},
			wantState:   State{Phase: PhaseTerminal, Origin: board.NoSquare},
			wantEffects: []Effect{ClearHandle{}, SetStatus{Text: StatusCheckmate}},
		},
		{
			name:        "stalemated",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true, Result: &workers.Result{Reply: engine.Reply{State: engine.StateStalemate}}},
			wantState:   State{Phase: PhaseTerminal, Origin: board.NoSquare},
			wantEffects: []Effect{ClearHandle{}, SetStatus{Text: StatusStalemate}},
		},
		{
			name:        "immediate mate",
			state:       State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare},
			input:       Input{HasHandle: true, Result: &workers.Result{Reply: mate}},
			wantState:   State{Phase: PhaseTerminal, Origin: board.NoSquare},
			wantEffects: []Effect{ClearHandle{}, ApplyReply{Reply: mate}, SetStatus{Text: StatusCheckmate}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotState, gotEffects := Next(tt.state, tt.input)
			assert.Equal(t, tt.wantState, gotState)
			assert.Equal(t, tt.wantEffects, gotEffects)
		})
	}
}

func TestNext_IsDeterministic(t *testing.T) {
	s := State{Phase: PhaseAwaitingDestination, Origin: board.NewSquare(6, 4)}
	in := Input{Click: square(4, 4), Legal: true}

	firstState, firstEffects := Next(s, in)
	for i := 0; i < 10; i++ {
		gotState, gotEffects := Next(s, in)
		assert.Equal(t, firstState, gotState)
		assert.Equal(t, firstEffects, gotEffects)
	}
}

func TestPlayers_ToMove(t *testing.T) {
	players := Players{Interactive, Computational}
	assert.Equal(t, Interactive, players.ToMove(0))
	assert.Equal(t, Computational, players.ToMove(1))
	assert.Equal(t, Interactive, players.ToMove(42))
	assert.Equal(t, Computational, Interactive.Toggle())
}
