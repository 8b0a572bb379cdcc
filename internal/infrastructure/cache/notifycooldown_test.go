package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestNotifyCooldown_ShouldNotify(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	cooldown := NewNotifyCooldown(client, time.Hour)
	ctx := context.Background()

	first, err := cooldown.ShouldNotify(ctx, "ticket_overdue:42")
	require.NoError(t, err)
	assert.True(t, first, "first event should fan out")

	second, err := cooldown.ShouldNotify(ctx, "ticket_overdue:42")
	require.NoError(t, err)
	assert.False(t, second, "repeated event should be suppressed")

	other, err := cooldown.ShouldNotify(ctx, "ticket_overdue:43")
	require.NoError(t, err)
	assert.True(t, other, "different ticket should not share the cooldown")
}

func TestNotifyCooldown_ExpiresAfterTTL(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	cooldown := NewNotifyCooldown(client, time.Hour)
	ctx := context.Background()

	first, err := cooldown.ShouldNotify(ctx, "ticket_overdue:7")
	require.NoError(t, err)
	assert.True(t, first)

	mr.FastForward(time.Hour + time.Minute)

	again, err := cooldown.ShouldNotify(ctx, "ticket_overdue:7")
	require.NoError(t, err)
	assert.True(t, again, "cooldown should expire after the TTL")
}

func TestNotifyCooldown_Clear(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	cooldown := NewNotifyCooldown(client, time.Hour)
	ctx := context.Background()

	_, err := cooldown.ShouldNotify(ctx, "ticket_overdue:9")
	require.NoError(t, err)

	require.NoError(t, cooldown.Clear(ctx, "ticket_overdue:9"))

	again, err := cooldown.ShouldNotify(ctx, "ticket_overdue:9")
	require.NoError(t, err)
	assert.True(t, again, "cleared key should notify immediately")
}

func TestNotifyCooldown_DefaultTTL(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	cooldown := NewNotifyCooldown(client, 0)
	assert.Equal(t, DefaultOverdueCooldown, cooldown.ttl)
}