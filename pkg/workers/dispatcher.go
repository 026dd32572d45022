package workers

import (
	"sync/atomic"
	"time"

	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/cbodonnell/gambit/pkg/state"
)

// Result is what a dispatched computation delivers.
type Result struct {
	Reply engine.Reply
	// Generation is the cell generation at dispatch.
	Generation uint64
	Elapsed    time.Duration
}

// Handle is the receive end of one dispatched computation.
type Handle struct {
	resultChan <-chan Result
}

// Poll returns the result if it has arrived. It never blocks.
func (h *Handle) Poll() (Result, bool) {
	select {
	case result := <-h.resultChan:
		return result, true
	default:
		return Result{}, false
	}
}

type Dispatcher struct {
	cell       state.Cell
	engine     engine.Engine
	live       atomic.Int32
	dispatched atomic.Uint64
}

type NewDispatcherOptions struct {
	Cell   state.Cell
	Engine engine.Engine
}

// NewDispatcher creates a new Dispatcher.
// Each dispatch runs the engine's reply search in its own goroutine while
// holding the cell for the whole search, and delivers the reply through a
// one-slot channel that the caller polls.
func NewDispatcher(opts NewDispatcherOptions) *Dispatcher {
	return &Dispatcher{
		cell:   opts.Cell,
		engine: opts.Engine,
	}
}

func (d *Dispatcher) Dispatch() *Handle {
	resultChan := make(chan Result, 1)
	id := d.dispatched.Add(1)
	d.live.Add(1)

	// a reset may take the lock before the worker does, so the game the
	// computation belongs to is fixed here
	generation := d.cell.Generation()
	logger := log.Default().With("computation", id).With("session", d.cell.Session())

	go func() {
		defer d.live.Add(-1)

		result := Result{Generation: generation}
		start := time.Now()
		d.cell.With(func(g *engine.Game) {
			result.Reply = d.engine.ComputeReply(g)
		})
		result.Elapsed = time.Since(start)
		logger.Info("Computation finished in %v: %s%s score %d depth %d nodes %d",
			result.Elapsed, result.Reply.From, result.Reply.To, result.Reply.Score, result.Reply.Depth, result.Reply.Nodes)

		select {
		case resultChan <- result:
		default:
			logger.Debug("Dropped result")
		}
	}()

	logger.Debug("Dispatched computation for generation %d", generation)
	return &Handle{resultChan: resultChan}
}

// Live returns the number of computations still running.
func (d *Dispatcher) Live() int {
	return int(d.live.Load())
}

// Dispatched returns the number of computations started so far.
func (d *Dispatcher) Dispatched() uint64 {
	return d.dispatched.Load()
}
