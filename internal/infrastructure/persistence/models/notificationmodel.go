package models

type NotificationModel struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index:idx_notifications_user_read"`
	SiteID           uint   `gorm:"not null;index"`
	Type             string `gorm:"size:30;not null;index"`
	Title            string `gorm:"size:200;not null"`
	Message          string `gorm:"type:text"`
	DeepLink         string `gorm:"size:255"`
	RelatedTicketID  *uint  `gorm:"index"`
	RelatedBookingID *uint  `gorm:"index"`
	IsRead           bool   `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type PushEndpointModel struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"not null;index:idx_push_endpoints_user_active"`
	Token              string `gorm:"size:500"`
	EndpointURL        string `gorm:"size:500;not null"`
	P256dhKey          string `gorm:"size:255"`
	AuthKey            string `gorm:"size:255"`
	BrowserFingerprint string `gorm:"size:100;index"`
	IsActive           bool   `gorm:"not null;default:true;index:idx_push_endpoints_user_active"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null;index"`
}

func (PushEndpointModel) TableName() string {
	return "push_endpoints"
}

type DeliveryRecordModel struct {
	ID             uint   `gorm:"primaryKey"`
	NotificationID uint   `gorm:"not null;index"`
	EndpointID     uint   `gorm:"not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	FailureReason  string `gorm:"size:500"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DeliveryRecordModel) TableName() string {
	return "notification_delivery_records"
}
