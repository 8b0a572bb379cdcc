package migration

import (
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the development strategy
// keeps in sync. Order matters only for readability; there are no foreign
// key constraints.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.ImportBatchModel{},
		&models.CategoryModel{},
		&models.SkillGroupModel{},
		&models.SiteMembershipModel{},
		&models.ResolverAvailabilityModel{},
		&models.UserModel{},
		&models.NotificationModel{},
		&models.PushEndpointModel{},
		&models.DeliveryRecordModel{},
		&models.RoomBookingModel{},
	}
}
