package usecases

import "context"

// ResolverLocator finds an eligible resolver for a skill group at a site.
// Implemented by staffing.ResolverLocator.
type ResolverLocator interface {
	Locate(ctx context.Context, skillGroupID, siteID uint) *uint
}

type IntakeTicketExecutor interface {
	Execute(ctx context.Context, cmd IntakeTicketCommand) (*IntakeTicketResult, error)
}

type ImportTicketsExecutor interface {
	Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportTicketsResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type BulkReassignExecutor interface {
	Execute(ctx context.Context, cmd BulkReassignCommand) (*BulkReassignResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type PauseWorkExecutor interface {
	Execute(ctx context.Context, cmd PauseWorkCommand) (*PauseWorkResult, error)
}

type GetSLAProgressExecutor interface {
	Execute(ctx context.Context, query GetSLAProgressQuery) (*SLAProgressResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
