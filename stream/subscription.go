package stream

import (
	"context"
	"errors"
	"log"
	"sync"
)

var ErrClosed = errors.New("subscription closed before first snapshot")

// Subscription is a live sequence of snapshots. The consumer reads C until it
// is closed and must call Close (or cancel the context it was started with)
// when it is done. Slow consumers only ever see the latest snapshot.
type Subscription[T any] struct {
	c      chan T
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Producer emits snapshots until ctx is done. emit returns false once the
// subscription has been released.
type Producer[T any] func(ctx context.Context, emit func(T) bool) error

func Start[T any](parent context.Context, produce Producer[T]) *Subscription[T] {
	ctx, cancel := context.WithCancel(parent)
	s := &Subscription[T]{
		c:      make(chan T, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.c)
		err := produce(ctx, func(v T) bool { return s.emit(ctx, v) })
		if err != nil && !errors.Is(err, context.Canceled) {
			s.err = err
		}
	}()

	return s
}

func (s *Subscription[T]) emit(ctx context.Context, v T) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case s.c <- v:
			return true
		default:
			select {
			case <-s.c:
			default:
			}
		}
	}
}

func (s *Subscription[T]) C() <-chan T {
	return s.c
}

// Close releases the producer and waits for it to stop.
func (s *Subscription[T]) Close() {
	s.cancel()
	<-s.done
}

// Err reports why the producer stopped. Valid once C is closed.
func (s *Subscription[T]) Err() error {
	<-s.done
	return s.err
}

// Refetch emits fetch's result once up front and again after every signal on
// changes. Failed fetches are logged and skipped.
func Refetch[T any](parent context.Context, changes <-chan struct{}, fetch func(ctx context.Context) (T, error)) *Subscription[T] {
	return Start(parent, func(ctx context.Context, emit func(T) bool) error {
		for {
			snapshot, err := fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("Warning: snapshot fetch failed: %v", err)
			} else if !emit(snapshot) {
				return ctx.Err()
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case _, ok := <-changes:
				if !ok {
					return nil
				}
			}
		}
	})
}

// Static emits a single value and stays open until released.
func Static[T any](parent context.Context, v T) *Subscription[T] {
	return Start(parent, func(ctx context.Context, emit func(T) bool) error {
		emit(v)
		<-ctx.Done()
		return ctx.Err()
	})
}

// First waits for the first snapshot and releases the subscription.
func First[T any](ctx context.Context, s *Subscription[T]) (T, error) {
	defer s.Close()
	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case v, ok := <-s.C():
		if !ok {
			if err := s.Err(); err != nil {
				return zero, err
			}
			return zero, ErrClosed
		}
		return v, nil
	}
}

// Broadcaster fans the latest value out to any number of observers.
type Broadcaster[T any] struct {
	mu       sync.Mutex
	watchers map[chan T]struct{}
	last     T
	hasLast  bool
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{watchers: make(map[chan T]struct{})}
}

func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = v
	b.hasLast = true
	for c := range b.watchers {
		replace(c, v)
	}
}

// Subscribe returns a channel that receives the current value, if any, and
// every later one. It is closed when ctx is done.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) <-chan T {
	c := make(chan T, 1)
	b.mu.Lock()
	b.watchers[c] = struct{}{}
	if b.hasLast {
		c <- b.last
	}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.watchers, c)
		close(c)
		b.mu.Unlock()
	}()
	return c
}

func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.watchers)
}

func replace[T any](c chan T, v T) {
	for {
		select {
		case c <- v:
			return
		default:
			select {
			case <-c:
			default:
			}
		}
	}
}

// OnChange opens a change feed bound to the subscription's lifetime and
// refetches on every signal from it.
func OnChange[T any](parent context.Context, open func(ctx context.Context) (<-chan struct{}, error), fetch func(ctx context.Context) (T, error)) (*Subscription[T], error) {
	ctx, cancel := context.WithCancel(parent)
	changes, err := open(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	s := Refetch(ctx, changes, fetch)
	go func() {
		<-s.done
		cancel()
	}()
	return s, nil
}

// Merge forwards signals from every input until ctx is done.
func Merge(ctx context.Context, inputs ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{}, 1)
	for _, in := range inputs {
		go func(in <-chan struct{}) {
			for {
				select {
				case <-ctx.Done():
					return
				case _, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- struct{}{}:
					default:
					}
				}
			}
		}(in)
	}
	return out
}
