package stream

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"
)

// Listener is the part of *pq.Listener the hub uses.
type Listener interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Close() error
}

func NewPGListener(connStr string) *pq.Listener {
	return pq.NewListener(connStr, 10*time.Second, time.Minute, func(event pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("Warning: postgres listener event %d: %v", event, err)
		}
	})
}

type pgWatcher struct {
	channel string
	payload string
	c       chan struct{}
}

// PGHub turns NOTIFY traffic into change signals. One LISTEN is issued per
// channel no matter how many watchers share it.
type PGHub struct {
	listener  Listener
	mu        sync.Mutex
	listening map[string]bool
	watchers  map[*pgWatcher]struct{}
}

func NewPGHub(listener Listener) *PGHub {
	return &PGHub{
		listener:  listener,
		listening: make(map[string]bool),
		watchers:  make(map[*pgWatcher]struct{}),
	}
}

// Watch signals on the returned channel whenever channel is notified with
// payload. An empty payload matches every notification on the channel.
func (h *PGHub) Watch(ctx context.Context, channel, payload string) (<-chan struct{}, error) {
	h.mu.Lock()
	if !h.listening[channel] {
		if err := h.listener.Listen(channel); err != nil {
			h.mu.Unlock()
			return nil, err
		}
		h.listening[channel] = true
	}
	w := &pgWatcher{channel: channel, payload: payload, c: make(chan struct{}, 1)}
	h.watchers[w] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.watchers, w)
		h.mu.Unlock()
	}()
	return w.c, nil
}

func (h *PGHub) Run(ctx context.Context) {
	notifications := h.listener.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			h.dispatch(n)
		}
	}
}

// dispatch wakes matching watchers. A nil notification follows a reconnect,
// when anything may have been missed, so every watcher is woken.
func (h *PGHub) dispatch(n *pq.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.watchers {
		if n != nil && (w.channel != n.Channel || (w.payload != "" && w.payload != n.Extra)) {
			continue
		}
		select {
		case w.c <- struct{}{}:
		default:
		}
	}
}

func (h *PGHub) Close() error {
	return h.listener.Close()
}

// Watcher is the change-signal side of a PGHub.
type Watcher interface {
	Watch(ctx context.Context, channel, payload string) (<-chan struct{}, error)
}

var _ Watcher = (*PGHub)(nil)

// Notified emits fetch's result up front and again whenever channel is
// notified with payload. The watch registration is dropped with the
// subscription.
func Notified[T any](parent context.Context, w Watcher, channel, payload string, fetch func(ctx context.Context) (T, error)) (*Subscription[T], error) {
	return OnChange(parent, func(ctx context.Context) (<-chan struct{}, error) {
		return w.Watch(ctx, channel, payload)
	}, fetch)
}
