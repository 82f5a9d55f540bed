package events

import (
	"context"
	"sync"
	"time"

	"badgeofshame/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

var Em *Emitter

const writeTimeout = 2 * time.Second

// Config tunes batching. Events are written when BatchSize accumulate or
// FlushEvery elapses, whichever comes first.
type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{Buffer: 1000, BatchSize: 50, FlushEvery: 2 * time.Second}
	fastConfig    = Config{Buffer: 1000, BatchSize: 50, FlushEvery: 50 * time.Millisecond}
)

// Sink persists a batch of events.
type Sink interface {
	Write(ctx context.Context, evts []models.Event) error
}

type mongoSink struct {
	coll *mongo.Collection
}

func (s mongoSink) Write(ctx context.Context, evts []models.Event) error {
	docs := make([]any, len(evts))
	for i, evt := range evts {
		docs[i] = evt
	}

	_, err := s.coll.InsertMany(ctx, docs)
	return err
}

type discardSink struct{}

func (discardSink) Write(context.Context, []models.Event) error { return nil }

// Emitter batches audit events into a Sink and fans them out to live
// subscribers.
type Emitter struct {
	sink       Sink
	cfg        Config
	deployment string

	mu     sync.RWMutex
	closed bool
	queue  chan models.Event
	done   chan struct{}

	hub *hub
}

// NewEmitter persists into coll. A nil collection keeps the live fan-out and
// discards the batches.
func NewEmitter(coll *mongo.Collection, deployment string) *Emitter {
	var sink Sink = discardSink{}
	if coll != nil {
		sink = mongoSink{coll: coll}
	}

	cfg := defaultConfig
	if deployment == "test" {
		cfg = fastConfig
	}

	return New(sink, deployment, cfg)
}

func New(sink Sink, deployment string, cfg Config) *Emitter {
	e := &Emitter{
		sink:       sink,
		cfg:        cfg,
		deployment: deployment,
		queue:      make(chan models.Event, cfg.Buffer),
		done:       make(chan struct{}),
		hub:        newHub(),
	}

	go e.run()

	return e
}

// Close flushes pending events, waits for the writer and ends every
// subscription. Events emitted afterwards are dropped.
func (e *Emitter) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	<-e.done
	e.hub.closeAll()
}

func (e *Emitter) write(batch []models.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := e.sink.Write(ctx, batch); err != nil {
		logrus.WithError(err).WithField("events", len(batch)).Warn("failed to persist audit events")
	}
}

func (e *Emitter) run() {
	defer close(e.done)

	ticker := time.NewTicker(e.cfg.FlushEvery)
	defer ticker.Stop()

	batch := make([]models.Event, 0, e.cfg.BatchSize)
	flush := func() {
		if len(batch) > 0 {
			e.write(batch)
			batch = make([]models.Event, 0, e.cfg.BatchSize)
		}
	}

	for {
		select {
		case evt, ok := <-e.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, evt)
			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
