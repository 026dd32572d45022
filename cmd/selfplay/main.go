package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/game"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/state"
	"github.com/cbodonnell/gambit/pkg/turn"
	"github.com/cbodonnell/gambit/pkg/workers"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	secondsPerMove := flag.Float64("seconds-per-move", engine.MinSecondsPerMove, "Engine thinking time per move")
	threads := flag.Int("threads", runtime.NumCPU(), "Number of search threads")
	maxPlies := flag.Int("max-plies", 200, "Stop after this many plies, 0 for no limit")
	fen := flag.String("fen", "", "Starting position, defaults to the initial position")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rules := engine.NewRules(engine.NewRulesOptions{
		Threads: *threads,
	})
	g := rules.NewGame()
	if *fen != "" {
		g, err = engine.NewGameFromFEN(*fen)
		if err != nil {
			panic(fmt.Sprintf("Failed to load position: %v", err))
		}
		g.Threads = *threads
	}
	cell := state.NewInMemoryCell(g)
	log.Info("Starting self-play session %s", cell.Session())

	controller := turn.NewController(turn.NewControllerOptions{
		Cell:   cell,
		Engine: rules,
		Dispatcher: workers.NewDispatcher(workers.NewDispatcherOptions{
			Cell:   cell,
			Engine: rules,
		}),
		Players:        turn.Players{turn.Computational, turn.Computational},
		SecondsPerMove: *secondsPerMove,
	})

	gameLoopInterval := time.Second / 60
	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Controller:       controller,
		GameLoopInterval: gameLoopInterval,
		MaxPlies:         *maxPlies,
	})

	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to run game manager: %v", err))
	}

	if moves, ok := controller.MoveList(); ok {
		for _, line := range moves {
			fmt.Println(line)
		}
	}
}
