package ws

import (
	"context"
	"errors"
	"sync"

	"badgeofshame/internal/models"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var errClientClosed = errors.New("websocket closed by client")

// EventWriter sends audit events over a WebSocket.
type EventWriter struct {
	conn *websocket.Conn
}

func (w *EventWriter) WriteEvent(evt models.Event) error {
	if err := WriteEvent(w.conn, evt); err != nil {
		// Use a specific error to signal that the client has disconnected.
		return errClientClosed
	}
	return nil
}

func (w *EventWriter) WriteStatus(level, message string) {
	_ = WriteStatus(w.conn, level, message)
}

// StreamWebSocket upgrades to WebSocket and streams using the provided streamer function.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, writer *EventWriter) error) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		writer := &EventWriter{conn: conn}

		// Cancel the stream as soon as the client goes away.
		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-closed:
				cancel()
			case <-streamCtx.Done():
			}
		}()

		err := streamer(streamCtx, writer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errClientClosed) {
			_ = WriteStatus(conn, "error", "event stream failed")
		}

		_ = WriteStatus(conn, "info", "event stream ended")
	})
}

// TailEvents forwards events from ch until ctx ends or ch closes.
func TailEvents(ctx context.Context, ch <-chan models.Event, writer *EventWriter) error {
	writer.WriteStatus("info", "event stream started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writer.WriteEvent(evt); err != nil {
				return err
			}
		}
	}
}
