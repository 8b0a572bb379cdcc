package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atrium-inc/atrium/internal/shared/id"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator produces process-unique ticket numbers from a
// monotonically increasing millisecond timestamp plus a random base62
// suffix. The composition guarantees uniqueness within the process; the
// unique index on tickets.number is the second line of defense against
// duplicate submissions across processes.
type DefaultNumberGenerator struct {
	mu            sync.Mutex
	lastUnixMilli int64
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	now := time.Now().UnixMilli()
	if now <= g.lastUnixMilli {
		now = g.lastUnixMilli + 1
	}
	g.lastUnixMilli = now
	g.mu.Unlock()

	suffix, err := id.Generate(id.SuffixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket number suffix: %w", err)
	}

	return fmt.Sprintf("TKT-%d-%s", now, suffix), nil
}
