package engine

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/notnil/chess"
)

// Rules implements Engine on top of github.com/notnil/chess.
type Rules struct {
	threads int
}

var _ Engine = &Rules{}

type NewRulesOptions struct {
	// Threads is the number of goroutines used by ComputeReply.
	Threads int
}

func NewRules(opts NewRulesOptions) *Rules {
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	return &Rules{
		threads: threads,
	}
}

func (r *Rules) NewGame() *Game {
	g := newGame()
	g.Threads = r.threads
	return g
}

func (r *Rules) Reset(g *Game) {
	g.reset()
}

func (r *Rules) Board(g *Game) board.Board {
	var b board.Board
	chessBoard := g.game.Position().Board()
	for sq := board.Square(0); sq < board.Squares; sq++ {
		b[sq] = fromChessPiece(chessBoard.Piece(toChessSquare(sq)))
	}
	return b
}

func (r *Rules) LegalDestinations(g *Game, origin board.Square) []board.Square {
	if !origin.Valid() {
		return nil
	}
	from := toChessSquare(origin)
	seen := make(map[chess.Square]bool)
	var destinations []board.Square
	for _, m := range g.game.ValidMoves() {
		if m.S1() != from || seen[m.S2()] {
			continue
		}
		// promotions share a destination
		seen[m.S2()] = true
		destinations = append(destinations, fromChessSquare(m.S2()))
	}
	return destinations
}

func (r *Rules) IsLegalMove(g *Game, origin, destination board.Square) bool {
	return findMove(g.game.Position(), origin, destination, board.Empty) != nil
}

func (r *Rules) ApplyMove(g *Game, origin, destination board.Square, promotion board.Piece) MoveFlag {
	m := findMove(g.game.Position(), origin, destination, promotion)
	if m == nil {
		log.Warn("Rejected illegal move %s%s", origin, destination)
		return FlagIllegal
	}
	if err := g.game.Move(m); err != nil {
		log.Error("Failed to apply move %s%s: %v", origin, destination, err)
		return FlagIllegal
	}
	g.MoveCounter++
	return moveFlag(m)
}

func (r *Rules) DescribeMove(g *Game, origin, destination board.Square, flag MoveFlag) string {
	if flag.Has(FlagIllegal) {
		return fmt.Sprintf("%s%s illegal", origin, destination)
	}
	number := (g.MoveCounter-1)/2 + 1
	dots := "."
	if g.MoveCounter%2 == 0 {
		dots = "..."
	}

	notation := fmt.Sprintf("%s-%s", origin, destination)
	moves := g.game.Moves()
	positions := g.game.Positions()
	if len(moves) > 0 {
		last := moves[len(moves)-1]
		if last.S1() == toChessSquare(origin) && last.S2() == toChessSquare(destination) {
			notation = chess.AlgebraicNotation{}.Encode(positions[len(moves)-1], last)
		}
	}
	if flag.Has(FlagEnPassant) {
		notation += " e.p."
	}
	return fmt.Sprintf("%d%s %s", number, dots, notation)
}

func (r *Rules) MoveList(g *Game) []string {
	moves := g.game.Moves()
	positions := g.game.Positions()
	var lines []string
	var line strings.Builder
	for i, m := range moves {
		san := chess.AlgebraicNotation{}.Encode(positions[i], m)
		if i%2 == 0 {
			line.Reset()
			fmt.Fprintf(&line, "%d. %s", i/2+1, san)
		} else {
			fmt.Fprintf(&line, " %s", san)
			lines = append(lines, line.String())
		}
	}
	if len(moves)%2 == 1 {
		lines = append(lines, line.String())
	}
	return lines
}

func (r *Rules) ComputeReply(g *Game) Reply {
	threads := g.Threads
	if threads < 1 {
		threads = r.threads
	}
	return search(g.game.Position(), g.SecondsPerMove, threads)
}

func findMove(pos *chess.Position, origin, destination board.Square, promotion board.Piece) *chess.Move {
	if !origin.Valid() || !destination.Valid() {
		return nil
	}
	from, to := toChessSquare(origin), toChessSquare(destination)
	promo := toChessPieceType(promotion)
	if promo == chess.NoPieceType {
		promo = chess.Queen
	}
	for _, m := range pos.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != promo {
			continue
		}
		return m
	}
	return nil
}

func moveFlag(m *chess.Move) MoveFlag {
	var flag MoveFlag
	if m.HasTag(chess.Capture) {
		flag |= FlagCapture
	}
	if m.HasTag(chess.Check) {
		flag |= FlagCheck
	}
	if m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle) {
		flag |= FlagCastle
	}
	if m.HasTag(chess.EnPassant) {
		flag |= FlagEnPassant
	}
	if m.Promo() != chess.NoPieceType {
		flag |= FlagPromotion
	}
	return flag
}

// toChessSquare maps a logical square (row 0 = rank 8) to a chess square (a1 = 0).
func toChessSquare(sq board.Square) chess.Square {
	return chess.Square((board.Size-1-sq.Row())*board.Size + sq.Col())
}

func fromChessSquare(sq chess.Square) board.Square {
	return board.NewSquare(board.Size-1-int(sq.Rank()), int(sq.File()))
}

func fromChessPiece(p chess.Piece) board.Piece {
	var kind board.Piece
	switch p.Type() {
	case chess.Pawn:
		kind = board.Pawn
	case chess.Knight:
		kind = board.Knight
	case chess.Bishop:
		kind = board.Bishop
	case chess.Rook:
		kind = board.Rook
	case chess.Queen:
		kind = board.Queen
	case chess.King:
		kind = board.King
	default:
		return board.Empty
	}
	if p.Color() == chess.Black {
		return -kind
	}
	return kind
}

func toChessPieceType(p board.Piece) chess.PieceType {
	switch p.Kind() {
	case board.Knight:
		return chess.Knight
	case board.Bishop:
		return chess.Bishop
	case board.Rook:
		return chess.Rook
	case board.Queen:
		return chess.Queen
	}
	return chess.NoPieceType
}
