package models

type CategoryModel struct {
	ID              uint   `gorm:"primaryKey"`
	Code            string `gorm:"size:50;uniqueIndex;not null"`
	Name            string `gorm:"size:100;not null"`
	SkillGroupID    uint   `gorm:"not null;index"`
	DefaultPriority string `gorm:"size:20;not null"`
	SLAHours        int    `gorm:"not null;default:24"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type SkillGroupModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:50;uniqueIndex;not null"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SkillGroupModel) TableName() string {
	return "skill_groups"
}

type RoomBookingModel struct {
	ID        uint   `gorm:"primaryKey"`
	RoomName  string `gorm:"size:100;not null"`
	SiteID    uint   `gorm:"not null;index"`
	BookedBy  uint   `gorm:"not null;index"`
	StartsAt  int64  `gorm:"not null;index"`
	EndsAt    int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RoomBookingModel) TableName() string {
	return "room_bookings"
}
