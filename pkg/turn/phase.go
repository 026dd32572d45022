package turn

import "github.com/cbodonnell/gambit/pkg/board"

// Phase is the position of the controller in the turn cycle.
type Phase int

const (
	// PhaseTerminal is reached when the game is over. Only a new game leaves it.
	PhaseTerminal Phase = iota
	PhaseDecidingTurn
	PhaseAwaitingOrigin
	PhaseAwaitingDestination
	PhaseWorkerInFlight
)

func (p Phase) String() string {
	switch p {
	case PhaseTerminal:
		return "Terminal"
	case PhaseDecidingTurn:
		return "DecidingTurn"
	case PhaseAwaitingOrigin:
		return "AwaitingOrigin"
	case PhaseAwaitingDestination:
		return "AwaitingDestination"
	case PhaseWorkerInFlight:
		return "WorkerInFlight"
	}
	return "Unknown"
}

// Interactive reports whether the phase consumes clicks.
func (p Phase) Interactive() bool {
	return p == PhaseAwaitingOrigin || p == PhaseAwaitingDestination
}

// State is the controller's position in the turn cycle. Origin is only
// meaningful in PhaseAwaitingDestination.
type State struct {
	Phase  Phase
	Origin board.Square
}

func deciding() State {
	return State{Phase: PhaseDecidingTurn, Origin: board.NoSquare}
}
