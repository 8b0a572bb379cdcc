package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/application/notification/usecases"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                 {}
func (nopLogger) Info(msg string, args ...any)                  {}
func (nopLogger) Warn(msg string, args ...any)                  {}
func (nopLogger) Error(msg string, args ...any)                 {}
func (nopLogger) Fatal(msg string, args ...any)                 {}
func (n nopLogger) With(args ...any) logger.Interface           { return n }
func (n nopLogger) Named(name string) logger.Interface          { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type stubTicketSource struct {
	siteIDs    []uint
	siteErr    error
	overdue    map[uint][]*ticket.Ticket
	overdueErr map[uint]error
}

func (s *stubTicketSource) ListOpenSiteIDs(ctx context.Context) ([]uint, error) {
	return s.siteIDs, s.siteErr
}

func (s *stubTicketSource) GetOverdue(ctx context.Context, siteID uint) ([]*ticket.Ticket, error) {
	if err := s.overdueErr[siteID]; err != nil {
		return nil, err
	}
	return s.overdue[siteID], nil
}

type stubFanOut struct {
	commands []usecases.FanOutCommand
	err      error
}

func (s *stubFanOut) Execute(ctx context.Context, cmd usecases.FanOutCommand) (*usecases.FanOutResult, error) {
	s.commands = append(s.commands, cmd)
	if s.err != nil {
		return nil, s.err
	}
	return &usecases.FanOutResult{Recipients: 2, Dispatched: 2}, nil
}

func overdueTicket(t *testing.T, id, siteID uint) *ticket.Ticket {
	t.Helper()
	assignee := uint(7)
	skillGroup := uint(3)
	assignedAt := time.Now().Add(-48 * time.Hour)
	deadline := assignedAt.Add(4 * time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, "TKT-1700000000000-Ab3d", "AC not cooling", "", "ac_breakdown",
		&skillGroup, vo.PriorityHigh, vo.StatusAssigned,
		siteID, 5, &assignee, &assignedAt,
		4, &deadline, true, false, nil, 0,
		false, false, nil, "", nil,
		1, assignedAt, assignedAt, nil,
	)
	require.NoError(t, err)
	return tk
}

func TestSLAOverdueScanner_Execute(t *testing.T) {
	source := &stubTicketSource{
		siteIDs: []uint{1, 2},
		overdue: map[uint][]*ticket.Ticket{
			1: {overdueTicket(t, 101, 1)},
			2: {overdueTicket(t, 201, 2), overdueTicket(t, 202, 2)},
		},
	}
	fanOut := &stubFanOut{}

	scanner := NewSLAOverdueScanner(source, fanOut, nopLogger{})
	found, err := scanner.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, found)
	require.Len(t, fanOut.commands, 3)
	assert.Equal(t, "ticket_overdue", fanOut.commands[0].EventType)
	assert.Equal(t, uint(101), fanOut.commands[0].TicketID)
}

func TestSLAOverdueScanner_Execute_SiteFailureDoesNotStopSweep(t *testing.T) {
	source := &stubTicketSource{
		siteIDs: []uint{1, 2},
		overdue: map[uint][]*ticket.Ticket{
			2: {overdueTicket(t, 201, 2)},
		},
		overdueErr: map[uint]error{1: errors.New("db gone")},
	}
	fanOut := &stubFanOut{}

	scanner := NewSLAOverdueScanner(source, fanOut, nopLogger{})
	found, err := scanner.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, found)
	require.Len(t, fanOut.commands, 1)
	assert.Equal(t, uint(201), fanOut.commands[0].TicketID)
}

func TestSLAOverdueScanner_Execute_FanOutFailureContained(t *testing.T) {
	source := &stubTicketSource{
		siteIDs: []uint{1},
		overdue: map[uint][]*ticket.Ticket{
			1: {overdueTicket(t, 101, 1), overdueTicket(t, 102, 1)},
		},
	}
	fanOut := &stubFanOut{err: errors.New("push service down")}

	scanner := NewSLAOverdueScanner(source, fanOut, nopLogger{})
	found, err := scanner.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, found)
	assert.Len(t, fanOut.commands, 2)
}

func TestSLAOverdueScanner_Execute_SourceFailure(t *testing.T) {
	source := &stubTicketSource{siteErr: errors.New("db gone")}
	scanner := NewSLAOverdueScanner(source, &stubFanOut{}, nopLogger{})

	_, err := scanner.Execute(context.Background())
	assert.Error(t, err)
}
