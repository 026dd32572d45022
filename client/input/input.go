package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ClickJustPressed returns the screen position of a pointer press that
// started this tick. This is used to handle both mouse and touch inputs.
func ClickJustPressed() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

func IsRotateJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsNewGameJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyN)
}

// IsMoveListJustPressed returns a boolean value indicating whether the move list should be printed.
func IsMoveListJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyL)
}
