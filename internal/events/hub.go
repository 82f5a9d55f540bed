package events

import (
	"sync"

	"badgeofshame/internal/models"
)

const subscriberBuffer = 64

type hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan models.Event
}

func newHub() *hub {
	return &hub{subs: make(map[int]chan models.Event)}
}

func (h *hub) subscribe() (<-chan models.Event, func()) {
	ch := make(chan models.Event, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	return ch, func() { h.drop(id) }
}

func (h *hub) drop(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}

// publish never blocks; a full subscriber buffer loses the event.
func (h *hub) publish(evt models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
