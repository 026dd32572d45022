package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/turn"
)

// GameManager runs a turn controller on a ticker, without a window. It is
// used to let the engine play itself from a terminal.
type GameManager struct {
	controller       *turn.Controller
	gameLoopInterval time.Duration
	maxPlies         int
	lastStatus       string
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Controller       *turn.Controller
	GameLoopInterval time.Duration
	// MaxPlies stops the game after this many plies. Zero means no limit.
	MaxPlies int
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		controller:       opts.Controller,
		gameLoopInterval: opts.GameLoopInterval,
		maxPlies:         opts.MaxPlies,
	}
}

// Start starts the game loop. It returns when the game is over, the ply
// limit is reached or ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("invalid game loop interval: %v", gm.gameLoopInterval)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if gm.gameTick() {
				return nil
			}
		}
	}
}

// gameTick runs one iteration of the game loop and reports whether the
// game has finished.
func (gm *GameManager) gameTick() bool {
	gm.controller.Update()

	if status := gm.controller.Status(); status != gm.lastStatus {
		log.Info("%s", status)
		gm.lastStatus = status
	}

	if gm.controller.Phase() == turn.PhaseTerminal {
		log.Info("Game over after %d plies", gm.controller.MoveCounter())
		return true
	}
	if gm.maxPlies > 0 && gm.controller.MoveCounter() >= gm.maxPlies && !gm.controller.Thinking() {
		log.Info("Stopping after %d plies", gm.controller.MoveCounter())
		return true
	}
	return false
}
