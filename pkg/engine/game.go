package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

const (
	DefaultSecondsPerMove = 1.5
	MinSecondsPerMove     = 0.1
	MaxSecondsPerMove     = 5.0
)

// Game is the shared, mutable game state.
type Game struct {
	// MoveCounter is the number of plies played. The side to move is
	// MoveCounter % 2, white first.
	MoveCounter int
	// SecondsPerMove is the search budget for ComputeReply.
	SecondsPerMove float64
	// Threads is the number of goroutines ComputeReply may search with.
	Threads int

	game *chess.Game
	fen  string
}

func newGame(opts ...func(*chess.Game)) *Game {
	return &Game{
		SecondsPerMove: DefaultSecondsPerMove,
		Threads:        1,
		game:           chess.NewGame(opts...),
	}
}

// NewGameFromFEN returns a game starting at fen. The move counter starts at
// zero or one so that its parity matches the side to move.
func NewGameFromFEN(fen string) (*Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fen: %v", err)
	}
	g := newGame(opt)
	g.fen = fen
	if g.game.Position().Turn() == chess.Black {
		g.MoveCounter = 1
	}
	return g, nil
}

// FEN returns the current position in Forsyth-Edwards notation.
func (g *Game) FEN() string {
	return g.game.Position().String()
}

func (g *Game) reset() {
	if g.fen == "" {
		g.game = chess.NewGame()
		g.MoveCounter = 0
		return
	}
	opt, _ := chess.FEN(g.fen)
	g.game = chess.NewGame(opt)
	g.MoveCounter = 0
	if g.game.Position().Turn() == chess.Black {
		g.MoveCounter = 1
	}
}

// ClampSecondsPerMove limits s to the accepted search budget range.
func ClampSecondsPerMove(s float64) float64 {
	if s < MinSecondsPerMove {
		return MinSecondsPerMove
	}
	if s > MaxSecondsPerMove {
		return MaxSecondsPerMove
	}
	return s
}
