package collisions

import (
	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/solarlune/resolv"
)

const TagSquare = "square"

// NewBoardSpace returns a space with one cell and one object per board
// square, laid out as drawn on screen with its origin at the board's top
// left corner.
func NewBoardSpace(squareSize int) *resolv.Space {
	space := resolv.NewSpace(board.Size*squareSize, board.Size*squareSize, squareSize, squareSize)
	size := float64(squareSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			// inset by a pixel so that each object occupies a single cell
			space.Add(resolv.NewObject(float64(col)*size+1, float64(row)*size+1, size-2, size-2, TagSquare))
		}
	}
	return space
}

// ClickAt resolves a point relative to the board's top left corner to the
// square drawn there.
func ClickAt(space *resolv.Space, x, y float64) (board.Click, bool) {
	col, row := space.WorldToSpace(x, y)
	cell := space.Cell(col, row)
	if cell == nil || !cell.ContainsTags(TagSquare) {
		return board.Click{}, false
	}
	return board.Click{Row: row, Col: col}, true
}
