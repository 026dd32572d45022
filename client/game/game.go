package game

import (
	"fmt"

	"github.com/cbodonnell/gambit/client/scenes"
	"github.com/cbodonnell/gambit/pkg/turn"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const WindowTitle = "Gambit"

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// controller drives the turns of the game being played.
	controller *turn.Controller
	// scene is the current scene.
	scene scenes.Scene
	// title is the last window title set.
	title string
}

type NewGameOptions struct {
	Debug      bool
	Controller *turn.Controller
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:      opts.Debug,
		controller: opts.Controller,
	}

	boardScene, err := scenes.NewBoardScene(opts.Controller)
	if err != nil {
		return nil, fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(boardScene); err != nil {
		return nil, fmt.Errorf("failed to set board scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	g.updateTitle()
	return nil
}

func (g *Game) updateTitle() {
	title := WindowTitle
	if status := g.controller.Status(); status != "" {
		title = fmt.Sprintf("%s - %s", WindowTitle, status)
	}
	if g.controller.Thinking() {
		title += turn.StatusThinking
	}
	if title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   %s", g.controller))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Waiting: %d ticks, workers: %d", g.controller.Redraws(), g.controller.Workers()))
}

const (
	DefaultScreenWidth  = scenes.PanelX + 220
	DefaultScreenHeight = scenes.StatusY + 40
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
