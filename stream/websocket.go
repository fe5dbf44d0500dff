package stream

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the request and writes every snapshot of sub as a
// JSON text frame. sub is released when the peer goes away or sub ends.
func ServeWebSocket[T any](w http.ResponseWriter, r *http.Request, sub *Subscription[T]) {
	defer sub.Close()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.cancel()
				return
			}
		}
	}()

	for snapshot := range sub.C() {
		if err := conn.WriteJSON(snapshot); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
	if err := sub.Err(); err != nil {
		log.Printf("Warning: subscription ended: %v", err)
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Dial opens a WebSocket subscription whose JSON frames decode into T.
func Dial[T any](parent context.Context, url string, header http.Header) (*Subscription[T], error) {
	conn, _, err := websocket.DefaultDialer.DialContext(parent, url, header)
	if err != nil {
		return nil, err
	}

	return Start(parent, func(ctx context.Context, emit func(T) bool) error {
		stop := context.AfterFunc(ctx, func() { conn.Close() })
		defer stop()
		defer conn.Close()

		for {
			var snapshot T
			if err := conn.ReadJSON(&snapshot); err != nil {
				if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					return nil
				}
				return err
			}
			if !emit(snapshot) {
				return nil
			}
		}
	}), nil
}
