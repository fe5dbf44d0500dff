package stream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodrun/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, c <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-c:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

func TestRefetch_EmitsOnEveryChange(t *testing.T) {
	changes := make(chan struct{})
	calls := 0
	sub := stream.Refetch(context.Background(), changes, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})
	defer sub.Close()

	assert.Equal(t, 1, receive(t, sub.C()))
	changes <- struct{}{}
	assert.Equal(t, 2, receive(t, sub.C()))
	changes <- struct{}{}
	assert.Equal(t, 3, receive(t, sub.C()))
}

func TestRefetch_SkipsFailedFetch(t *testing.T) {
	changes := make(chan struct{})
	calls := 0
	sub := stream.Refetch(context.Background(), changes, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("listener error")
		}
		return "ok", nil
	})
	defer sub.Close()

	changes <- struct{}{}
	assert.Equal(t, "ok", receive(t, sub.C()))
}

func TestSubscription_CloseReleasesProducer(t *testing.T) {
	released := make(chan struct{})
	sub := stream.Start(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		emit(1)
		<-ctx.Done()
		close(released)
		return ctx.Err()
	})

	assert.Equal(t, 1, receive(t, sub.C()))
	sub.Close()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("producer was not released")
	}
	_, ok := <-sub.C()
	assert.False(t, ok)
	assert.NoError(t, sub.Err())
}

func TestSubscription_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := stream.Static(ctx, "v")
	assert.Equal(t, "v", receive(t, sub.C()))

	cancel()
	select {
	case _, ok := <-sub.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription did not end with its context")
	}
}

func TestSubscription_LatestWins(t *testing.T) {
	emitted := make(chan struct{})
	sub := stream.Start(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		for i := 1; i <= 5; i++ {
			emit(i)
		}
		close(emitted)
		<-ctx.Done()
		return nil
	})
	defer sub.Close()

	<-emitted
	assert.Equal(t, 5, receive(t, sub.C()))
}

func TestSubscription_ProducerError(t *testing.T) {
	boom := errors.New("boom")
	sub := stream.Start(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		return boom
	})

	_, err := stream.First(context.Background(), sub)
	assert.ErrorIs(t, err, boom)
}

func TestFirst(t *testing.T) {
	sub := stream.Static(context.Background(), 42)
	v, err := stream.First(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	empty := stream.Start(context.Background(), func(ctx context.Context, emit func(int) bool) error { return nil })
	_, err = stream.First(context.Background(), empty)
	assert.ErrorIs(t, err, stream.ErrClosed)
}

func TestBroadcaster(t *testing.T) {
	b := stream.NewBroadcaster[string]()
	b.Publish("first")

	ctx, cancel := context.WithCancel(context.Background())
	c := b.Subscribe(ctx)
	assert.Equal(t, "first", receive(t, c))

	b.Publish("second")
	b.Publish("third")
	assert.Equal(t, "third", receive(t, c))
	assert.Equal(t, 1, b.Len())

	cancel()
	select {
	case _, ok := <-c:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("observer channel was not closed")
	}
	assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestOnChange_ReleasesFeed(t *testing.T) {
	feedDone := make(chan struct{})
	sub, err := stream.OnChange(context.Background(), func(ctx context.Context) (<-chan struct{}, error) {
		go func() {
			<-ctx.Done()
			close(feedDone)
		}()
		return make(chan struct{}), nil
	}, func(ctx context.Context) (string, error) {
		return "snapshot", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "snapshot", receive(t, sub.C()))
	sub.Close()

	select {
	case <-feedDone:
	case <-time.After(time.Second):
		t.Fatal("change feed outlived its subscription")
	}
}

func TestMerge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := make(chan struct{})
	b := make(chan struct{})
	merged := stream.Merge(ctx, a, b)

	a <- struct{}{}
	receive(t, merged)
	b <- struct{}{}
	receive(t, merged)
}
