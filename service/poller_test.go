package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerTicksAndStops(t *testing.T) {
	var ticks atomic.Int32
	p := NewPoller(5*time.Millisecond, func() { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 },
		time.Second, 5*time.Millisecond)

	p.Stop()
	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), settled+1, "no further ticks after stop")
}
