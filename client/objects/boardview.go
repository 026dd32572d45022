package objects

import (
	"image/color"

	"github.com/cbodonnell/gambit/client/fonts"
	"github.com/cbodonnell/gambit/client/input"
	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/collisions"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"golang.org/x/image/font"
)

var (
	lightSquareColor = color.RGBA{R: 238, G: 238, B: 210, A: 255}
	darkSquareColor  = color.RGBA{R: 118, G: 150, B: 86, A: 255}
	selectedColor    = color.RGBA{R: 246, G: 246, B: 105, A: 200}
	lastMoveColor    = color.RGBA{R: 186, G: 202, B: 68, A: 160}
	reachableColor   = color.RGBA{R: 20, G: 20, B: 20, A: 90}
	whitePieceColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blackPieceColor  = color.RGBA{R: 10, G: 10, B: 10, A: 255}
)

// BoardView draws the board and highlight map and reports clicks on its
// squares as they are laid out on screen. It never rotates: both maps it is
// given are already in display order.
type BoardView struct {
	*BaseObject

	x, y       float64
	squareSize float64
	space      *resolv.Space
	snapshot   func() (board.Board, board.Highlights)
	onClick    func(board.Click)
}

type NewBoardViewOptions struct {
	// X and Y place the top left corner of the board on screen.
	X, Y       float64
	SquareSize int
	// Snapshot returns the position and the highlight map in display order.
	Snapshot func() (board.Board, board.Highlights)
	OnClick  func(board.Click)
}

func NewBoardView(id string, opts NewBoardViewOptions) *BoardView {
	return &BoardView{
		BaseObject: NewBaseObject(id, nil),
		x:          opts.X,
		y:          opts.Y,
		squareSize: float64(opts.SquareSize),
		space:      collisions.NewBoardSpace(opts.SquareSize),
		snapshot:   opts.Snapshot,
		onClick:    opts.OnClick,
	}
}

func (o *BoardView) Update() error {
	x, y, ok := input.ClickJustPressed()
	if !ok {
		return nil
	}
	click, ok := collisions.ClickAt(o.space, float64(x)-o.x, float64(y)-o.y)
	if !ok {
		return nil
	}
	o.onClick(click)
	return nil
}

func (o *BoardView) Draw(screen *ebiten.Image) {
	position, highlights := o.snapshot()
	size := float32(o.squareSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			x := float32(o.x) + float32(col)*size
			y := float32(o.y) + float32(row)*size

			squareColor := lightSquareColor
			if (row+col)%2 == 1 {
				squareColor = darkSquareColor
			}
			vector.DrawFilledRect(screen, x, y, size, size, squareColor, false)

			display := board.NewSquare(row, col)
			switch highlights[display] {
			case board.TagSelected:
				vector.DrawFilledRect(screen, x, y, size, size, selectedColor, false)
			case board.TagLastMove:
				vector.DrawFilledRect(screen, x, y, size, size, lastMoveColor, false)
			case board.TagReachable:
				vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/6, reachableColor, true)
			}

			o.drawPiece(screen, position.At(display), x, y)
		}
	}
}

func (o *BoardView) drawPiece(screen *ebiten.Image, p board.Piece, x, y float32) {
	if p == board.Empty {
		return
	}
	t := p.String()
	f := fonts.MPlusPieceFont
	bounds, _ := font.BoundString(f, t)
	w := float64((bounds.Max.X - bounds.Min.X) >> 6)
	h := float64((bounds.Max.Y - bounds.Min.Y) >> 6)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(x)+(o.squareSize-w)/2-float64(bounds.Min.X>>6),
		float64(y)+(o.squareSize-h)/2-float64(bounds.Min.Y>>6),
	)
	pieceColor := whitePieceColor
	if p.IsBlack() {
		pieceColor = blackPieceColor
	}
	op.ColorScale.ScaleWithColor(pieceColor)
	text.DrawWithOptions(screen, t, f, op)
}
