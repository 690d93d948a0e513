package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleFlightSkipsOverlappingTrigger(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var runs atomic.Int32

	sf := NewSingleFlight("test", func(context.Context) error {
		// Only the first run blocks; later runs complete immediately.
		if runs.Add(1) == 1 {
			close(started)
			<-release
		}
		return nil
	}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sf.Trigger(context.Background())
	}()

	<-started
	assert.False(t, sf.Trigger(context.Background()), "overlapping trigger must be skipped")
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, sf.Trigger(context.Background()), "next trigger runs again")
	assert.Equal(t, int32(2), runs.Load())
}

func TestSingleFlightJobErrorDoesNotWedge(t *testing.T) {
	sf := NewSingleFlight("test", func(context.Context) error {
		return errors.New("boom")
	}, nil)

	assert.True(t, sf.Trigger(context.Background()))
	assert.True(t, sf.Trigger(context.Background()), "a failed run releases the guard")
}
