package ticket

import (
	"fmt"
	"time"

	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id                 uint
	number             string
	title              string
	description        string
	categoryCode       string
	skillGroupID       *uint
	priority           vo.Priority
	status             vo.TicketStatus
	siteID             uint
	raisedBy           uint
	assignedTo         *uint
	assignedAt         *time.Time
	slaHours           int
	slaDeadline        *time.Time
	slaStarted         bool
	workPaused         bool
	workPausedAt       *time.Time
	totalPausedMinutes int
	isVague            bool
	isInternal         bool
	floorNumber        *int
	location           string
	importBatchID      *string
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	closedAt           *time.Time
}

// NewTicket creates an open, unassigned ticket. The assignment engine follows
// up with Assign or Waitlist before persisting; a ticket never leaves intake
// in plain open status with no skill group.
func NewTicket(
	title string,
	description string,
	siteID uint,
	raisedBy uint,
) (*Ticket, error) {
	if len(title) == 0 && len(description) == 0 {
		return nil, fmt.Errorf("title or description is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if siteID == 0 {
		return nil, fmt.Errorf("site ID is required")
	}
	if raisedBy == 0 {
		return nil, fmt.Errorf("raised-by user ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		priority:    vo.PriorityMedium,
		status:      vo.StatusOpen,
		siteID:      siteID,
		raisedBy:    raisedBy,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	categoryCode string,
	skillGroupID *uint,
	priority vo.Priority,
	status vo.TicketStatus,
	siteID uint,
	raisedBy uint,
	assignedTo *uint,
	assignedAt *time.Time,
	slaHours int,
	slaDeadline *time.Time,
	slaStarted bool,
	workPaused bool,
	workPausedAt *time.Time,
	totalPausedMinutes int,
	isVague bool,
	isInternal bool,
	floorNumber *int,
	location string,
	importBatchID *string,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:                 id,
		number:             number,
		title:              title,
		description:        description,
		categoryCode:       categoryCode,
		skillGroupID:       skillGroupID,
		priority:           priority,
		status:             status,
		siteID:             siteID,
		raisedBy:           raisedBy,
		assignedTo:         assignedTo,
		assignedAt:         assignedAt,
		slaHours:           slaHours,
		slaDeadline:        slaDeadline,
		slaStarted:         slaStarted,
		workPaused:         workPaused,
		workPausedAt:       workPausedAt,
		totalPausedMinutes: totalPausedMinutes,
		isVague:            isVague,
		isInternal:         isInternal,
		floorNumber:        floorNumber,
		location:           location,
		importBatchID:      importBatchID,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		closedAt:           closedAt,
	}, nil
}

func (t *Ticket) ID() uint                   { return t.id }
func (t *Ticket) Number() string             { return t.number }
func (t *Ticket) Title() string              { return t.title }
func (t *Ticket) Description() string        { return t.description }
func (t *Ticket) CategoryCode() string       { return t.categoryCode }
func (t *Ticket) SkillGroupID() *uint        { return t.skillGroupID }
func (t *Ticket) Priority() vo.Priority      { return t.priority }
func (t *Ticket) Status() vo.TicketStatus    { return t.status }
func (t *Ticket) SiteID() uint               { return t.siteID }
func (t *Ticket) RaisedBy() uint             { return t.raisedBy }
func (t *Ticket) AssignedTo() *uint          { return t.assignedTo }
func (t *Ticket) AssignedAt() *time.Time     { return t.assignedAt }
func (t *Ticket) SLAHours() int              { return t.slaHours }
func (t *Ticket) SLADeadline() *time.Time    { return t.slaDeadline }
func (t *Ticket) SLAStarted() bool           { return t.slaStarted }
func (t *Ticket) WorkPaused() bool           { return t.workPaused }
func (t *Ticket) WorkPausedAt() *time.Time   { return t.workPausedAt }
func (t *Ticket) TotalPausedMinutes() int    { return t.totalPausedMinutes }
func (t *Ticket) IsVague() bool              { return t.isVague }
func (t *Ticket) IsInternal() bool           { return t.isInternal }
func (t *Ticket) FloorNumber() *int          { return t.floorNumber }
func (t *Ticket) Location() string           { return t.location }
func (t *Ticket) ImportBatchID() *string     { return t.importBatchID }
func (t *Ticket) Version() int               { return t.version }
func (t *Ticket) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time       { return t.closedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the ticket number. A number is immutable once set.
func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// TagImportBatch links the ticket to the CSV import batch that produced it.
func (t *Ticket) TagImportBatch(batchID string) {
	if batchID == "" {
		return
	}
	t.importBatchID = &batchID
	t.updatedAt = time.Now()
}

// Classify records the classification outcome on the ticket. Called once at
// intake before the assignment decision.
func (t *Ticket) Classify(categoryCode string, skillGroupID *uint, priority vo.Priority, slaHours int, isVague bool) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	t.categoryCode = categoryCode
	t.skillGroupID = skillGroupID
	t.priority = priority
	t.slaHours = slaHours
	t.isVague = isVague
	t.updatedAt = time.Now()
	return nil
}

// AttachLocation records extracted floor/place metadata, independent of the
// assignment outcome.
func (t *Ticket) AttachLocation(floorNumber *int, location string) {
	t.floorNumber = floorNumber
	t.location = location
	t.updatedAt = time.Now()
}

// Assign moves the ticket to assigned status, starts the SLA clock, and
// records the assignee. Valid from open and waitlist.
func (t *Ticket) Assign(assigneeID uint, at time.Time) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if !t.status.CanTransitionTo(vo.StatusAssigned) {
		return fmt.Errorf("cannot assign ticket with status %s", t.status)
	}

	deadline := Deadline(at, t.slaHours)

	t.assignedTo = &assigneeID
	t.assignedAt = &at
	t.slaDeadline = &deadline
	t.slaStarted = true
	t.status = vo.StatusAssigned
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// Waitlist parks the ticket for manual claim. Idempotent: waitlisting a
// waitlisted ticket is a no-op.
func (t *Ticket) Waitlist() error {
	if t.status.IsWaitlist() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusWaitlist) {
		return fmt.Errorf("cannot waitlist ticket with status %s", t.status)
	}

	t.status = vo.StatusWaitlist
	t.assignedTo = nil
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// ChangeStatus applies a guarded status transition. Changing to the current
// status is a no-op, which makes retried transition requests harmless.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	t.version++

	if newStatus.IsClosed() && t.closedAt == nil {
		now := time.Now()
		t.closedAt = &now
	}

	if newStatus.IsWaitlist() {
		t.assignedTo = nil
	}

	return nil
}

// PauseWork freezes SLA accounting at the given instant.
func (t *Ticket) PauseWork(at time.Time) error {
	if t.workPaused {
		return nil
	}
	if !t.status.IsAssigned() && !t.status.IsInProgress() {
		return fmt.Errorf("cannot pause work on ticket with status %s", t.status)
	}

	t.workPaused = true
	t.workPausedAt = &at
	t.updatedAt = time.Now()
	return nil
}

// ResumeWork adds the elapsed pause to the accumulated paused minutes and
// restarts SLA accounting.
func (t *Ticket) ResumeWork(at time.Time) error {
	if !t.workPaused {
		return nil
	}

	if t.workPausedAt != nil {
		t.totalPausedMinutes += int(at.Sub(*t.workPausedAt).Minutes())
	}
	t.workPaused = false
	t.workPausedAt = nil
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) IsOverdue(now time.Time) bool {
	if t.slaDeadline == nil || t.workPaused {
		return false
	}
	if t.status.IsResolved() || t.status.IsClosed() {
		return false
	}
	return now.After(t.slaDeadline.Add(time.Duration(t.totalPausedMinutes) * time.Minute))
}

// Validate enforces the creation-time invariants before the first persist.
func (t *Ticket) Validate() error {
	if len(t.title) == 0 && len(t.description) == 0 {
		return fmt.Errorf("title or description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.siteID == 0 {
		return fmt.Errorf("site ID is required")
	}
	if t.raisedBy == 0 {
		return fmt.Errorf("raised-by user ID is required")
	}

	assigned := t.status.IsAssigned() || t.status.IsInProgress()
	if assigned && t.assignedTo == nil {
		return fmt.Errorf("ticket in %s status must have an assignee", t.status)
	}
	if !assigned && t.assignedTo != nil {
		return fmt.Errorf("ticket in %s status must not have an assignee", t.status)
	}
	if t.slaDeadline != nil && t.assignedAt == nil {
		return fmt.Errorf("SLA deadline requires an assignment time")
	}
	return nil
}
