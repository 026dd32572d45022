package board

import "fmt"

const (
	// Size is the number of rows and columns.
	Size = 8
	// Squares is the number of squares on the board.
	Squares = Size * Size
)

// Square is a logical board index: row*8 + col, where row 0 is the eighth
// rank and col 0 is the a-file, i.e. the board as White sees it.
type Square int

const NoSquare Square = -1

func NewSquare(row, col int) Square {
	return Square(row*Size + col)
}

func (s Square) Row() int {
	return int(s) / Size
}

func (s Square) Col() int {
	return int(s) % Size
}

func (s Square) Valid() bool {
	return s >= 0 && s < Squares
}

// Mirror returns the square reached by mirroring both axes.
func (s Square) Mirror() Square {
	return Squares - 1 - s
}

// String returns the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), Size-s.Row())
}

// Transform maps a (row, col) pair between display and logical space.
// Rotation mirrors both axes, so the same function maps in both directions.
func Transform(rotated bool, row, col int) (int, int) {
	if rotated {
		return Size - 1 - row, Size - 1 - col
	}
	return row, col
}

// Piece is a signed piece code: positive for White, negative for Black,
// Empty for a vacant square.
type Piece int8

const (
	Empty  Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	Bishop Piece = 3
	Rook   Piece = 4
	Queen  Piece = 5
	King   Piece = 6
)

// Kind strips the color from p.
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

func (p Piece) IsWhite() bool {
	return p > 0
}

func (p Piece) IsBlack() bool {
	return p < 0
}

// String returns the FEN letter for p, upper case for White.
func (p Piece) String() string {
	letters := "?pnbrqk"
	kind := p.Kind()
	if kind == Empty || kind > King {
		return "."
	}
	l := letters[kind]
	if p.IsWhite() {
		l -= 'a' - 'A'
	}
	return string(l)
}

// Board is a snapshot of the position, indexed by logical Square.
type Board [Squares]Piece

func (b Board) At(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b[s]
}

// Mirrored returns the board as seen from the other side.
func (b Board) Mirrored() Board {
	var m Board
	for sq := range b {
		m[Square(sq).Mirror()] = b[sq]
	}
	return m
}

// Click is a pointer click on the cell drawn at (Row, Col) on screen.
type Click struct {
	Row int
	Col int
}

// Square resolves the click to a logical square for the given orientation.
func (c Click) Square(rotated bool) Square {
	row, col := Transform(rotated, c.Row, c.Col)
	return NewSquare(row, col)
}
