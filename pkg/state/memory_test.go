package state

import (
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/gambit/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryCell_TryWithSkipsWhenLocked(t *testing.T) {
	c := NewInMemoryCell(&engine.Game{})

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.With(func(g *engine.Game) {
			close(locked)
			<-release
		})
	}()
	<-locked

	ran := c.TryWith(func(g *engine.Game) {
		g.MoveCounter++
	})
	assert.False(t, ran)
	assert.False(t, c.TryReset(func(g *engine.Game) {}))
	assert.Equal(t, uint64(0), c.Generation())

	close(release)
	<-done

	ran = c.TryWith(func(g *engine.Game) {
		g.MoveCounter++
	})
	assert.True(t, ran)
	c.With(func(g *engine.Game) {
		assert.Equal(t, 1, g.MoveCounter)
	})
}

func TestInMemoryCell_TryReset(t *testing.T) {
	c := NewInMemoryCell(&engine.Game{MoveCounter: 7})
	session := c.Session()
	assert.NotEmpty(t, session)

	applied := c.TryReset(func(g *engine.Game) {
		g.MoveCounter = 0
	})
	assert.True(t, applied)
	assert.Equal(t, uint64(1), c.Generation())
	assert.NotEqual(t, session, c.Session())
	c.With(func(g *engine.Game) {
		assert.Equal(t, 0, g.MoveCounter)
	})
}

func TestInMemoryCell_MutualExclusion(t *testing.T) {
	c := NewInMemoryCell(&engine.Game{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.With(func(g *engine.Game) {
				n := g.MoveCounter
				time.Sleep(time.Microsecond)
				g.MoveCounter = n + 1
			})
		}()
	}
	wg.Wait()

	c.With(func(g *engine.Game) {
		assert.Equal(t, 50, g.MoveCounter)
	})
}
