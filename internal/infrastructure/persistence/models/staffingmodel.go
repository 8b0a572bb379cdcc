package models

type SiteMembershipModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:uq_site_memberships_user_site"`
	SiteID    uint   `gorm:"not null;uniqueIndex:uq_site_memberships_user_site;index"`
	Role      string `gorm:"size:30;not null;index"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SiteMembershipModel) TableName() string {
	return "site_memberships"
}

type ResolverAvailabilityModel struct {
	ID           uint  `gorm:"primaryKey"`
	UserID       uint  `gorm:"not null;uniqueIndex:uq_resolver_availability"`
	SkillGroupID uint  `gorm:"not null;uniqueIndex:uq_resolver_availability;index:idx_resolver_availability_lookup"`
	SiteID       uint  `gorm:"not null;uniqueIndex:uq_resolver_availability;index:idx_resolver_availability_lookup"`
	IsAvailable  bool  `gorm:"not null;default:false;index:idx_resolver_availability_lookup"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ResolverAvailabilityModel) TableName() string {
	return "resolver_availability"
}

// UserModel carries the minimum the notification copy needs: a display name.
// Account management itself lives in another service.
type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	DisplayName string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255;uniqueIndex"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
