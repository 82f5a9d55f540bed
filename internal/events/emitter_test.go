package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"badgeofshame/internal/models"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *recorder) Write(_ context.Context, evts []models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evts...)
	return nil
}

func (r *recorder) snapshot() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

func newTestEmitter(t *testing.T, cfg Config) (*Emitter, *recorder) {
	t.Helper()

	rec := &recorder{}
	return New(rec, "test", cfg), rec
}

func TestEmitterFlushesOnClose(t *testing.T) {
	e, rec := newTestEmitter(t, Config{Buffer: 10, BatchSize: 100, FlushEvery: time.Hour})

	e.BadgeResolved("octo/widget", "failing", 12, "dev", "")
	e.OperatorLogin("ops")
	e.Close()

	events := rec.snapshot()
	require.Len(t, events, 2)

	require.Equal(t, "badge.resolved", events[0].Action)
	require.Equal(t, "octo/widget", events[0].TargetID)
	require.Equal(t, TargetRepository, events[0].TargetType)
	require.Equal(t, "failing", events[0].Props["outcome"])
	require.Equal(t, "dev", events[0].Props["login"])
	require.Equal(t, "test", events[0].Deployment)
	require.False(t, events[0].TimeStamp.IsZero())

	require.Equal(t, "operator.login", events[1].Action)
	require.Equal(t, "ops", events[1].ActorID)
}

func TestEmitterFlushesFullBatches(t *testing.T) {
	e, rec := newTestEmitter(t, Config{Buffer: 10, BatchSize: 2, FlushEvery: time.Hour})
	defer e.Close()

	e.CacheEntryPurged("ops", "octo/widget")
	e.CacheEntryPurged("ops", "octo/gadget")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestEmitterFlushesOnTimer(t *testing.T) {
	e, rec := newTestEmitter(t, fastConfig)
	defer e.Close()

	e.BadgeResolved("octo/widget", "error", 0, "", "No commit ID")

	require.Eventually(t, func() bool {
		events := rec.snapshot()
		return len(events) == 1 && events[0].Props["diagnostic"] == "No commit ID"
	}, time.Second, 10*time.Millisecond)
}

func TestSubscribeReceivesEvents(t *testing.T) {
	e, _ := newTestEmitter(t, fastConfig)
	defer e.Close()

	ch, cancel := e.Subscribe()

	e.BadgeResolved("octo/widget", "passing", 3, "", "")

	select {
	case evt := <-ch:
		require.Equal(t, "badge.resolved", evt.Action)
		require.Equal(t, "octo/widget", evt.TargetID)
	case <-time.After(time.Second):
		t.Fatal("expected event on subscription")
	}

	cancel()
	_, open := <-ch
	require.False(t, open)

	// Cancelling twice is harmless.
	cancel()
}

func TestEmitAfterCloseIsDropped(t *testing.T) {
	e, rec := newTestEmitter(t, fastConfig)
	e.Close()
	e.Close()

	e.OperatorLogin("ops")
	require.Empty(t, rec.snapshot())
}

func TestNilEmitterWrappersAreNoops(t *testing.T) {
	var e *Emitter

	e.BadgeResolved("octo/widget", "passing", 1, "", "")
	e.CacheEntryPurged("ops", "octo/widget")
	e.OperatorLogin("ops")
}
