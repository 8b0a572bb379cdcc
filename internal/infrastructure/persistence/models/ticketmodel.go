package models

type TicketModel struct {
	ID                 uint    `gorm:"primaryKey"`
	Number             string  `gorm:"uniqueIndex;size:50;not null"`
	Title              string  `gorm:"size:200;not null"`
	Description        string  `gorm:"type:text"`
	CategoryCode       string  `gorm:"size:50;index"`
	SkillGroupID       *uint   `gorm:"index"`
	Priority           string  `gorm:"size:20;not null;index"`
	Status             string  `gorm:"size:20;not null;index"`
	SiteID             uint    `gorm:"not null;index"`
	RaisedBy           uint    `gorm:"not null;index"`
	AssignedTo         *uint   `gorm:"index"`
	AssignedAt         *int64
	SLAHours           int     `gorm:"not null;default:0"`
	SLADeadline        *int64  `gorm:"index"`
	SLAStarted         bool    `gorm:"not null;default:false"`
	WorkPaused         bool    `gorm:"not null;default:false"`
	WorkPausedAt       *int64
	TotalPausedMinutes int     `gorm:"not null;default:0"`
	IsVague            bool    `gorm:"not null;default:false"`
	IsInternal         bool    `gorm:"not null;default:false"`
	FloorNumber        *int
	Location           string  `gorm:"size:100"`
	ImportBatchID      *string `gorm:"size:36;index"`
	Version            int     `gorm:"not null;default:1"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt           *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ImportBatchModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Filename    string `gorm:"size:255;not null"`
	TotalRows   int    `gorm:"not null;default:0"`
	ValidRows   int    `gorm:"not null;default:0"`
	ErrorRows   int    `gorm:"not null;default:0"`
	Status      string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	CompletedAt *int64
}

func (ImportBatchModel) TableName() string {
	return "ticket_import_batches"
}
