package catalog

import (
	"context"

	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
)

// Category is reference data mapping a classifier category code to the skill
// group that resolves it, plus the default priority and SLA window. Categories
// are resolved by code, not by site, so classification stays portable across
// sites.
type Category struct {
	Code            string
	Name            string
	SkillGroupID    uint
	DefaultPriority vo.Priority
	SLAHours        int
}

// SkillGroup is a named pool of staff capable of resolving a class of issues.
type SkillGroup struct {
	ID   uint
	Code string
	Name string
}

// Well-known skill group codes used by the department fallback.
const (
	SkillGroupTechnical    = "technical"
	SkillGroupSoftServices = "soft_services"
)

// ReferenceDataStore resolves category and skill group reference data.
// A nil result with nil error means the code is unknown.
type ReferenceDataStore interface {
	CategoryByCode(ctx context.Context, code string) (*Category, error)
	SkillGroupByCode(ctx context.Context, code string) (*SkillGroup, error)
}
