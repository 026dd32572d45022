package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/cbodonnell/gambit/client/game"
	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/state"
	"github.com/cbodonnell/gambit/pkg/turn"
	"github.com/cbodonnell/gambit/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	rotate := flag.Bool("rotate", false, "Draw the board from Black's side")
	secondsPerMove := flag.Float64("seconds-per-move", engine.DefaultSecondsPerMove, "Engine thinking time per move")
	engineWhite := flag.Bool("engine-white", false, "Let the engine play White")
	engineBlack := flag.Bool("engine-black", true, "Let the engine play Black")
	threads := flag.Int("threads", runtime.NumCPU(), "Number of search threads")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	players := turn.Players{turn.Interactive, turn.Interactive}
	if *engineWhite {
		players[0] = turn.Computational
	}
	if *engineBlack {
		players[1] = turn.Computational
	}

	rules := engine.NewRules(engine.NewRulesOptions{
		Threads: *threads,
	})
	cell := state.NewInMemoryCell(rules.NewGame())
	log.Info("Starting game session %s", cell.Session())

	controller := turn.NewController(turn.NewControllerOptions{
		Cell:   cell,
		Engine: rules,
		Dispatcher: workers.NewDispatcher(workers.NewDispatcherOptions{
			Cell:   cell,
			Engine: rules,
		}),
		Players:        players,
		Rotated:        *rotate,
		SecondsPerMove: *secondsPerMove,
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		Controller: controller,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle(game.WindowTitle)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
