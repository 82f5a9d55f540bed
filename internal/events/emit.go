package events

import (
	"time"

	"badgeofshame/internal/models"
)

const (
	ActorOperator = "operator"
	ActorSystem   = "system"
	ActorVisitor  = "visitor"
)

const (
	TargetOperator   = "operator"
	TargetRepository = "repository"
)

// Emit stamps evt and hands it to subscribers and the writer. A full queue
// writes the event synchronously.
func (e *Emitter) Emit(evt models.Event) {
	evt.TimeStamp = time.Now().UTC()
	evt.Deployment = e.deployment

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return
	}

	e.hub.publish(evt)

	select {
	case e.queue <- evt:
	default:
		e.write([]models.Event{evt})
	}
}

// Subscribe returns a channel receiving every event emitted from now on and
// a function that ends the subscription. Slow subscribers miss events.
func (e *Emitter) Subscribe() (<-chan models.Event, func()) {
	return e.hub.subscribe()
}
