package engine

import (
	"github.com/cbodonnell/gambit/pkg/board"
)

const (
	// KingValue is the score of a position won by force at the first ply.
	KingValue = 20000
	// KingValueDiv2 separates forced-mate scores from material scores.
	KingValueDiv2 = KingValue / 2
)

// Engine owns the rules of the game and the search that produces replies.
// Every method that takes a *Game must be called while the caller holds
// exclusive access to it.
type Engine interface {
	// NewGame returns a game at the initial position.
	NewGame() *Game
	// Reset returns g to the initial position in place.
	Reset(g *Game)
	// Board returns a snapshot of the current position.
	Board(g *Game) board.Board
	// LegalDestinations returns every square the piece on origin may move to.
	LegalDestinations(g *Game, origin board.Square) []board.Square
	// IsLegalMove reports whether origin to destination is a legal move.
	IsLegalMove(g *Game, origin, destination board.Square) bool
	// ApplyMove plays origin to destination. promotion selects the piece a
	// pawn promotes to; Empty means queen.
	ApplyMove(g *Game, origin, destination board.Square, promotion board.Piece) MoveFlag
	// DescribeMove formats the move just applied.
	DescribeMove(g *Game, origin, destination board.Square, flag MoveFlag) string
	// ComputeReply searches the position and returns the move to play.
	ComputeReply(g *Game) Reply
	// MoveList returns the moves played so far, one full move per entry.
	MoveList(g *Game) []string
}

// MoveFlag describes side effects of an applied move.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagCheck
	FlagCastle
	FlagEnPassant
	FlagPromotion
	FlagIllegal
)

func (f MoveFlag) Has(flag MoveFlag) bool {
	return f&flag != 0
}

// ReplyState classifies the position a reply was computed for.
type ReplyState int

const (
	StatePlaying ReplyState = iota
	// StateCheckmate means the side to move is mated and has no reply.
	StateCheckmate
	// StateStalemate means the side to move has no legal move and is not in check.
	StateStalemate
)

func (s ReplyState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateCheckmate:
		return "Checkmate"
	case StateStalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// Reply is the result of a search.
type Reply struct {
	From  board.Square
	To    board.Square
	Score int
	State ReplyState
	// Distance is the number of plies to a forced mate, counting the mating
	// move plus one, or zero when no mate was found.
	Distance int
	Depth    int
	Nodes    int64
}
