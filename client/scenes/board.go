package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/gambit/client/fonts"
	"github.com/cbodonnell/gambit/client/input"
	"github.com/cbodonnell/gambit/client/objects"
	"github.com/cbodonnell/gambit/client/ui"
	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/turn"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	SquareSize = 60
	BoardX     = 20
	BoardY     = 20
	PanelX     = BoardX + board.Size*SquareSize + 20
	StatusY    = BoardY + board.Size*SquareSize + 12

	secondsPerMoveStep = 0.5
)

// BoardScene shows the board, the status line and a side panel with the
// game settings.
type BoardScene struct {
	*BaseScene

	controller *turn.Controller
	ui         *ebitenui.UI
	message    string
}

var _ Scene = &BoardScene{}

func NewBoardScene(controller *turn.Controller) (Scene, error) {
	root := objects.NewSortedZIndexObject("board-root")
	boardView := objects.NewBoardView("board", objects.NewBoardViewOptions{
		X:          BoardX,
		Y:          BoardY,
		SquareSize: SquareSize,
		Snapshot: func() (board.Board, board.Highlights) {
			return controller.DisplayBoard(), controller.Highlights()
		},
		OnClick: controller.Click,
	})
	if err := root.AddChild(boardView.GetID(), boardView); err != nil {
		return nil, fmt.Errorf("failed to add board view: %v", err)
	}
	statusLine := objects.NewStatusLineObject("status", BoardX, StatusY, controller.Status)
	if err := root.AddChild(statusLine.GetID(), statusLine); err != nil {
		return nil, fmt.Errorf("failed to add status line: %v", err)
	}

	return &BoardScene{
		BaseScene:  NewBaseScene(root),
		controller: controller,
	}, nil
}

func (s *BoardScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func actorLabel(side string, actor turn.Actor) string {
	if actor == turn.Computational {
		return side + ": Engine"
	}
	return side + ": Human"
}

func (s *BoardScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  BoardY,
				Left: PanelX,
			}))),
	)

	newButton := func(label string, handler func() error) *widget.Button {
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Stretch: true,
				}),
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   20,
				Right:  20,
				Top:    5,
				Bottom: 5,
			}),
		)
		button.ClickedEvent.AddHandler(func(args interface{}) {
			if err := handler(); err != nil {
				log.Error("Failed to handle %s: %v", label, err)
				if actionableErr, ok := err.(*ui.ActionableError); ok {
					s.message = actionableErr.Message
				} else {
					s.message = "Something went wrong. Please try again."
				}
			}
			s.renderUI()
		})
		return button
	}

	rootContainer.AddChild(newButton("Rotate", func() error {
		s.controller.ToggleRotation()
		return nil
	}))
	rootContainer.AddChild(newButton("New Game", func() error {
		s.controller.RequestNewGame()
		return nil
	}))
	rootContainer.AddChild(newButton("Print movelist", s.printMoveList))

	players := s.controller.Players()
	rootContainer.AddChild(newButton(actorLabel("White", players[0]), func() error {
		players[0] = players[0].Toggle()
		s.controller.SetPlayers(players)
		return nil
	}))
	rootContainer.AddChild(newButton(actorLabel("Black", players[1]), func() error {
		players[1] = players[1].Toggle()
		s.controller.SetPlayers(players)
		return nil
	}))

	timeContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	timeContainer.AddChild(newButton("-", func() error {
		s.controller.SetSecondsPerMove(s.controller.SecondsPerMove() - secondsPerMoveStep)
		return nil
	}))
	timeContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%.1f s/move", s.controller.SecondsPerMove()), fontFace, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	timeContainer.AddChild(newButton("+", func() error {
		s.controller.SetSecondsPerMove(s.controller.SecondsPerMove() + secondsPerMoveStep)
		return nil
	}))
	rootContainer.AddChild(timeContainer)

	if s.message != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.message, fonts.TTFSmallFont, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
		))
		s.message = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *BoardScene) printMoveList() error {
	moves, ok := s.controller.MoveList()
	if !ok {
		return &ui.ActionableError{Message: "The engine is thinking, try again."}
	}
	if len(moves) == 0 {
		log.Info("No moves played yet")
		return nil
	}
	for _, line := range moves {
		log.Info("%s", line)
	}
	return nil
}

func (s *BoardScene) handleInput() error {
	switch {
	case input.IsRotateJustPressed():
		s.controller.ToggleRotation()
	case input.IsNewGameJustPressed():
		s.controller.RequestNewGame()
	case input.IsMoveListJustPressed():
		if err := s.printMoveList(); err != nil {
			log.Warn("Failed to print move list: %v", err)
		}
	}
	return nil
}

func (s *BoardScene) Update() error {
	s.ui.Update()
	if err := s.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}
	// clicks are queued by the board view, so the tree updates first
	if err := s.BaseScene.Update(); err != nil {
		return err
	}
	s.controller.Update()
	return nil
}

func (s *BoardScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
