package objects

import (
	"image/color"

	"github.com/cbodonnell/gambit/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StatusLineObject draws a single line of text that is re-read every frame.
type StatusLineObject struct {
	*BaseObject

	text func() string
	x    float64
	y    float64
}

func NewStatusLineObject(id string, x, y float64, text func() string) GameObject {
	return &StatusLineObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 1}),
		text:       text,
		x:          x,
		y:          y,
	}
}

func (o *StatusLineObject) Draw(screen *ebiten.Image) {
	t := o.text()
	if t == "" {
		return
	}
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x, o.y-float64(bounds.Min.Y>>6))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
