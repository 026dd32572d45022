package engine

import "github.com/notnil/chess"

var pieceValues = [...]int{
	chess.NoPieceType: 0,
	chess.King:        0,
	chess.Queen:       900,
	chess.Rook:        500,
	chess.Bishop:      330,
	chess.Knight:      320,
	chess.Pawn:        100,
}

// Piece-square tables are laid out as printed: first row is the eighth rank
// from White's point of view.
var (
	pawnTable = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightTable = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopTable = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookTable = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	kingTable = [64]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
)

// evaluate scores pos in centipawns from the side to move's point of view.
func evaluate(pos *chess.Position) int {
	score := 0
	for sq, p := range pos.Board().SquareMap() {
		// chess squares count from a1, the tables from a8
		index := int(sq) ^ 56
		sign := 1
		if p.Color() == chess.Black {
			index = int(sq)
			sign = -1
		}
		score += sign * (pieceValues[p.Type()] + placement(p.Type(), index))
	}
	if pos.Turn() == chess.Black {
		return -score
	}
	return score
}

func placement(pt chess.PieceType, index int) int {
	switch pt {
	case chess.Pawn:
		return pawnTable[index]
	case chess.Knight:
		return knightTable[index]
	case chess.Bishop:
		return bishopTable[index]
	case chess.Rook:
		return rookTable[index]
	case chess.King:
		return kingTable[index]
	}
	return 0
}
