package usecases

import "context"

// CooldownGuard rate-limits repeat notifications for the same logical event,
// e.g. an overdue ticket picked up by every scanner sweep. Implemented with a
// Redis SETNX-with-TTL in infrastructure.
type CooldownGuard interface {
	// ShouldNotify reports whether the key is outside its cooldown window,
	// and atomically opens a new window when it is.
	ShouldNotify(ctx context.Context, key string) (bool, error)
}

type FanOutExecutor interface {
	Execute(ctx context.Context, cmd FanOutCommand) (*FanOutResult, error)
}

type RegisterEndpointExecutor interface {
	Execute(ctx context.Context, cmd RegisterEndpointCommand) (*RegisterEndpointResult, error)
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*MarkNotificationReadResult, error)
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}
