package turnclock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineFires(t *testing.T) {
	c := New(50 * time.Millisecond)
	defer c.Stop()

	fired := make(chan struct{})
	c.Reset("g1", func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("deadline never fired")
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	c := New(50 * time.Millisecond)
	defer c.Stop()

	var fired atomic.Bool
	c.Reset("g1", func() { fired.Store(true) })
	c.Cancel("g1")

	time.Sleep(500 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestResetRearms(t *testing.T) {
	c := New(100 * time.Millisecond)
	defer c.Stop()

	var count atomic.Int32
	c.Reset("g1", func() { count.Add(1) })
	c.Reset("g1", func() { count.Add(1) })

	time.Sleep(700 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestIndependentGames(t *testing.T) {
	c := New(50 * time.Millisecond)
	defer c.Stop()

	var a, b atomic.Bool
	c.Reset("g1", func() { a.Store(true) })
	c.Reset("g2", func() { b.Store(true) })
	c.Cancel("g1")

	time.Sleep(500 * time.Millisecond)
	assert.False(t, a.Load())
	assert.True(t, b.Load())
}
