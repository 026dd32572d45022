package state

import (
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/google/uuid"
)

type InMemoryCell struct {
	lock       sync.Mutex
	game       *engine.Game
	generation atomic.Uint64
	session    atomic.Value
}

var _ Cell = &InMemoryCell{}

func NewInMemoryCell(game *engine.Game) *InMemoryCell {
	c := &InMemoryCell{
		game: game,
	}
	c.session.Store(uuid.NewString())
	return c
}

func (c *InMemoryCell) With(fn func(g *engine.Game)) {
	c.lock.Lock()
	defer c.lock.Unlock()
	fn(c.game)
}

func (c *InMemoryCell) TryWith(fn func(g *engine.Game)) bool {
	if !c.lock.TryLock() {
		return false
	}
	defer c.lock.Unlock()
	fn(c.game)
	return true
}

func (c *InMemoryCell) TryReset(reset func(g *engine.Game)) bool {
	if !c.lock.TryLock() {
		return false
	}
	defer c.lock.Unlock()

	reset(c.game)
	previous := c.Session()
	c.session.Store(uuid.NewString())
	generation := c.generation.Add(1)
	log.Default().With("session", c.Session()).Info("Reset game state: generation %d (was %s)", generation, previous)
	return true
}

func (c *InMemoryCell) Generation() uint64 {
	return c.generation.Load()
}

func (c *InMemoryCell) Session() string {
	return c.session.Load().(string)
}
