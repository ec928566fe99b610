package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func waitForTick(t *testing.T, ticks <-chan struct{}) {
	t.Helper()
	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scheduler tick")
	}
}

func TestSchedulerTicksEagerlyAndOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	store.activeCalls = make(chan struct{}, 8)
	app, _ := newTestApp(store, catalogPool(5, 1_000_000), clock, Config{Window: 20 * time.Minute, LotSize: 5, MaxDraws: 50})

	scheduler := NewScheduler(app, clock, time.Minute)
	require.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	// First tick fires on start, before the interval elapses.
	waitForTick(t, store.activeCalls)

	clock.Advance(time.Minute)
	waitForTick(t, store.activeCalls)
}

func TestSchedulerStartTwice(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	app, _ := newTestApp(newFakeStore(), catalogPool(5, 1_000_000), clock, DefaultConfig())

	scheduler := NewScheduler(app, clock, time.Minute)
	require.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	require.Error(t, scheduler.Start(context.Background()))
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	app, _ := newTestApp(newFakeStore(), nil, clock, DefaultConfig())

	scheduler := NewScheduler(app, clock, time.Minute)
	require.Error(t, scheduler.Stop())
}

func TestSchedulerSurvivesTickErrors(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	store.activeCalls = make(chan struct{}, 8)
	store.getActiveErr = errors.New("database down")
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	scheduler := NewScheduler(app, clock, time.Minute)
	require.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	waitForTick(t, store.activeCalls)

	// The failed tick is logged and swallowed; the next one still runs.
	clock.Advance(time.Minute)
	waitForTick(t, store.activeCalls)
}

func TestSchedulerSkipsOverlappingTick(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	scheduler := NewScheduler(app, clock, time.Minute)

	// Hold the tick lock as an in-flight tick would; a concurrent tick must
	// bail out instead of waiting.
	scheduler.tickMu.Lock()
	defer scheduler.tickMu.Unlock()

	store.activeCalls = make(chan struct{}, 1)
	scheduler.tick(context.Background())

	select {
	case <-store.activeCalls:
		t.Fatal("overlapping tick was not skipped")
	default:
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	app, _ := newTestApp(newFakeStore(), nil, clock, DefaultConfig())

	scheduler := NewScheduler(app, clock, 0)
	require.Equal(t, defaultTickInterval, scheduler.interval)
}
