package search_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/jdlms/gcz-explorer/internal/search"
)

func TestDebouncer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := search.NewDebouncer(400*time.Millisecond, clock)

	var last atomic.Value
	var runs atomic.Int32
	for _, v := range []string{"a", "b", "c"} {
		d.Trigger(func() {
			last.Store(v)
			runs.Add(1)
		})
		clock.Advance(399 * time.Millisecond)
	}
	assert.Zero(t, runs.Load())

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, "c", last.Load())
}

func TestDebouncer_CancelAndStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := search.NewDebouncer(400*time.Millisecond, clock)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	d.Cancel()
	clock.Advance(time.Second)

	d.Stop()
	d.Trigger(func() { runs.Add(1) })
	clock.Advance(time.Second)

	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
