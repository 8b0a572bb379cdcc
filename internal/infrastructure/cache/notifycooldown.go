package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// notifyCooldownKeyPrefix is the prefix for all notification cooldown keys
	notifyCooldownKeyPrefix = "notify_cooldown:"
	// DefaultOverdueCooldown is how long a repeated overdue event for the
	// same ticket stays suppressed.
	DefaultOverdueCooldown = 4 * time.Hour
)

// NotifyCooldown provides Redis-based suppression of repeated notification
// events. Used for SLA overdue fan-out, which the scheduler re-detects on
// every sweep.
type NotifyCooldown struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotifyCooldown creates a new NotifyCooldown instance.
func NewNotifyCooldown(client *redis.Client, ttl time.Duration) *NotifyCooldown {
	if ttl <= 0 {
		ttl = DefaultOverdueCooldown
	}
	return &NotifyCooldown{client: client, ttl: ttl}
}

// ShouldNotify atomically checks and acquires the cooldown lock using SetNX.
// Returns true if the event should fan out, false if it is in cooldown.
// SetNX prevents TOCTOU races between multiple engine instances.
func (c *NotifyCooldown) ShouldNotify(ctx context.Context, key string) (bool, error) {
	acquired, err := c.client.SetNX(ctx, notifyCooldownKeyPrefix+key, "1", c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire notify cooldown: %w", err)
	}

	return acquired, nil
}

// Clear removes the cooldown for a key. Used when a ticket is resolved so a
// later breach of a new deadline notifies again.
func (c *NotifyCooldown) Clear(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, notifyCooldownKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to clear notify cooldown: %w", err)
	}

	return nil
}
