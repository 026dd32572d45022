package turn

import (
	"fmt"

	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/queue"
	"github.com/cbodonnell/gambit/pkg/state"
	"github.com/cbodonnell/gambit/pkg/workers"
)

// Controller drives the turn cycle. Update must be called from a single
// goroutine, once per iteration of the foreground loop. Clicks may be
// reported from anywhere.
type Controller struct {
	cell       state.Cell
	engine     engine.Engine
	dispatcher *workers.Dispatcher
	tracker    *board.Tracker
	clicks     queue.Queue[board.Click]

	state   State
	handle  *workers.Handle
	players Players
	status  string

	snapshot       board.Board
	moveCounter    int
	secondsPerMove float64
	resetPending   bool
	redraws        uint64
}

type NewControllerOptions struct {
	Cell       state.Cell
	Engine     engine.Engine
	Dispatcher *workers.Dispatcher
	Players    Players
	Rotated    bool
	// SecondsPerMove is copied into the game on every iteration.
	SecondsPerMove float64
	// Clicks buffers clicks until Update consumes them. Defaults to an
	// in-memory queue.
	Clicks queue.Queue[board.Click]
}

func NewController(opts NewControllerOptions) *Controller {
	clicks := opts.Clicks
	if clicks == nil {
		clicks = queue.NewInMemoryQueue[board.Click](queue.QueueBufferSize)
	}
	secondsPerMove := opts.SecondsPerMove
	if secondsPerMove == 0 {
		secondsPerMove = engine.DefaultSecondsPerMove
	}
	return &Controller{
		cell:           opts.Cell,
		engine:         opts.Engine,
		dispatcher:     opts.Dispatcher,
		tracker:        board.NewTracker(opts.Rotated),
		clicks:         clicks,
		state:          deciding(),
		players:        opts.Players,
		secondsPerMove: engine.ClampSecondsPerMove(secondsPerMove),
	}
}

// Update runs one iteration: apply a pending reset, refresh the snapshot,
// then advance the state machine by at most one click or result.
func (c *Controller) Update() {
	c.refresh()

	in := c.input()
	next, effects := Next(c.state, in)
	if next.Phase != c.state.Phase {
		log.Debug("Turn phase %s -> %s", c.state.Phase, next.Phase)
	}
	c.state = next

	for _, e := range effects {
		c.execute(e)
	}
}

func (c *Controller) refresh() {
	if c.resetPending {
		applied := c.cell.TryReset(func(g *engine.Game) {
			c.engine.Reset(g)
		})
		if applied {
			c.resetPending = false
			c.tracker.Reset()
			c.status = StatusNewGame
			c.state = deciding()
			if c.handle != nil {
				c.state = State{Phase: PhaseWorkerInFlight, Origin: board.NoSquare}
			}
		}
	}

	c.cell.TryWith(func(g *engine.Game) {
		g.SecondsPerMove = c.secondsPerMove
		c.moveCounter = g.MoveCounter
		c.snapshot = c.engine.Board(g)
	})
}

func (c *Controller) input() Input {
	in := Input{HasHandle: c.handle != nil}
	if !c.state.Phase.Interactive() {
		c.clicks.Clear()
	}

	switch c.state.Phase {
	case PhaseDecidingTurn:
		if c.handle != nil {
			break
		}
		c.cell.With(func(g *engine.Game) {
			c.moveCounter = g.MoveCounter
		})
		in.Actor = c.players.ToMove(c.moveCounter)

	case PhaseAwaitingOrigin, PhaseAwaitingDestination:
		click, ok := c.clicks.TryDequeue()
		if !ok {
			break
		}
		square := click.Square(c.tracker.Rotated())
		in.Click = &square
		if c.state.Phase == PhaseAwaitingDestination && square != c.state.Origin {
			c.cell.With(func(g *engine.Game) {
				in.Legal = c.engine.IsLegalMove(g, c.state.Origin, square)
			})
		}

	case PhaseWorkerInFlight:
		if c.handle == nil {
			log.Warn("No computation outstanding while waiting for one, deciding turn again")
			break
		}
		if result, ok := c.handle.Poll(); ok {
			in.Result = &result
			in.Stale = c.resetPending || result.Generation != c.cell.Generation()
		}
	}

	return in
}

func (c *Controller) execute(e Effect) {
	switch e := e.(type) {
	case SelectOrigin:
		var destinations []board.Square
		c.cell.With(func(g *engine.Game) {
			destinations = c.engine.LegalDestinations(g, e.Square)
		})
		c.tracker.Select(e.Square, destinations)
		log.Debug("Selected %s with %d destinations", e.Square, len(destinations))

	case RejectMove:
		c.tracker.Reset()
		c.status = StatusInvalidMove

	case ApplyMove:
		description, ok := c.applyMove(e.From, e.To)
		if !ok {
			c.tracker.Reset()
			c.status = StatusInvalidMove
			return
		}
		c.tracker.Complete(e.From, e.To)
		c.status = description

	case Dispatch:
		c.handle = c.dispatcher.Dispatch()

	case RequestRedraw:
		c.redraws++

	case ClearHandle:
		c.handle = nil

	case DiscardResult:
		log.Info("Discarded reply %s%s computed for generation %d", e.Result.Reply.From, e.Result.Reply.To, e.Result.Generation)

	case ApplyReply:
		description, ok := c.applyMove(e.Reply.From, e.Reply.To)
		if !ok {
			log.Warn("Engine reply %s%s was rejected", e.Reply.From, e.Reply.To)
			return
		}
		c.tracker.Complete(e.Reply.From, e.Reply.To)
		c.status = ReplyStatus(description, e.Reply)

	case SetStatus:
		c.status = e.Text

	default:
		log.Error("Unknown turn effect: %T", e)
	}
}

// applyMove plays a move under a blocking lock, since a mutation must not
// be skipped once its preconditions hold.
func (c *Controller) applyMove(from, to board.Square) (string, bool) {
	var description string
	var flag engine.MoveFlag
	c.cell.With(func(g *engine.Game) {
		flag = c.engine.ApplyMove(g, from, to, board.Empty)
		if flag.Has(engine.FlagIllegal) {
			return
		}
		description = c.engine.DescribeMove(g, from, to, flag)
		c.moveCounter = g.MoveCounter
		c.snapshot = c.engine.Board(g)
	})
	if flag.Has(engine.FlagIllegal) {
		return "", false
	}
	log.Info("Played %s", description)
	return description, true
}

// Click reports a click on the cell drawn at (row, col) on screen.
func (c *Controller) Click(click board.Click) {
	if err := c.clicks.Enqueue(click); err != nil {
		log.Warn("Dropped click %v: %v", click, err)
	}
}

// RequestNewGame resets the game at the start of the next iteration that
// finds the game state unlocked.
func (c *Controller) RequestNewGame() {
	c.resetPending = true
}

// SetPlayers replaces the player assignment. A selection in progress is
// abandoned; a running computation still delivers its reply.
func (c *Controller) SetPlayers(players Players) {
	if players == c.players {
		return
	}
	log.Info("Players changed: white %s black %s", players[0], players[1])
	c.players = players
	if c.state.Phase.Interactive() {
		c.tracker.Reset()
		c.state = deciding()
	}
}

func (c *Controller) ToggleRotation() {
	c.tracker.Rotate()
}

func (c *Controller) SetSecondsPerMove(seconds float64) {
	c.secondsPerMove = engine.ClampSecondsPerMove(seconds)
}

// MoveList returns the moves played so far. It reports false if the game
// state is busy.
func (c *Controller) MoveList() ([]string, bool) {
	var moves []string
	ok := c.cell.TryWith(func(g *engine.Game) {
		moves = c.engine.MoveList(g)
	})
	return moves, ok
}

func (c *Controller) Board() board.Board {
	return c.snapshot
}

// DisplayBoard returns the snapshot in the order it is drawn on screen.
func (c *Controller) DisplayBoard() board.Board {
	if c.tracker.Rotated() {
		return c.snapshot.Mirrored()
	}
	return c.snapshot
}

func (c *Controller) Highlights() board.Highlights {
	return c.tracker.Highlights()
}

func (c *Controller) Status() string {
	return c.status
}

func (c *Controller) Phase() Phase {
	return c.state.Phase
}

func (c *Controller) Rotated() bool {
	return c.tracker.Rotated()
}

func (c *Controller) Players() Players {
	return c.players
}

func (c *Controller) SecondsPerMove() float64 {
	return c.secondsPerMove
}

// MoveCounter returns the plies played as of the last snapshot.
func (c *Controller) MoveCounter() int {
	return c.moveCounter
}

// Thinking reports whether a computation is outstanding.
func (c *Controller) Thinking() bool {
	return c.handle != nil
}

// Workers returns the number of computations still running, including
// ones whose results were abandoned.
func (c *Controller) Workers() int {
	return c.dispatcher.Live()
}

// Redraws returns how many iterations were spent waiting on a computation.
func (c *Controller) Redraws() uint64 {
	return c.redraws
}

func (c *Controller) String() string {
	return fmt.Sprintf("phase=%s ply=%d players=%v rotated=%t", c.state.Phase, c.moveCounter, c.players, c.tracker.Rotated())
}
