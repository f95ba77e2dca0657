package rbac

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/jameszjgao/vouchap-crm/internal/observability"
)

// Broadcaster is the fire-and-forget refresh signal: Publish after a
// successful administrative save, Subscribe to re-resolve live contexts.
// The signal carries no payload.
type Broadcaster interface {
	Publish(ctx context.Context) error
	Subscribe(ctx context.Context, fn func(ctx context.Context))
}

// LocalBroadcaster fans out in-process. Suitable for single-instance
// deployments and tests.
type LocalBroadcaster struct {
	mu   sync.RWMutex
	subs []func(ctx context.Context)
}

func NewLocalBroadcaster() *LocalBroadcaster {
	return &LocalBroadcaster{}
}

func (b *LocalBroadcaster) Publish(ctx context.Context) error {
	b.mu.RLock()
	subs := make([]func(ctx context.Context), len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx)
	}
	observability.RecordRefreshBroadcast(ctx, "local")
	return nil
}

func (b *LocalBroadcaster) Subscribe(_ context.Context, fn func(ctx context.Context)) {
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// RedisBroadcaster distributes the refresh signal across instances via
// pub/sub so an administrative save on one node refreshes sessions on all.
type RedisBroadcaster struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisBroadcaster(client redis.UniversalClient, channel string) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, channel: channel}
}

func (b *RedisBroadcaster) Publish(ctx context.Context) error {
	if err := b.client.Publish(ctx, b.channel, "").Err(); err != nil {
		return err
	}
	observability.RecordRefreshBroadcast(ctx, "redis")
	return nil
}

// Subscribe consumes the channel until ctx is canceled. Message content is
// ignored; receipt alone triggers the handler.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, fn func(ctx context.Context)) {
	sub := b.client.Subscribe(ctx, b.channel)
	go func() {
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					slog.WarnContext(ctx, "refresh subscription closed", "channel", b.channel)
					return
				}
				fn(ctx)
			}
		}
	}()
}
