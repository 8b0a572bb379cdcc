package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "github.com/atrium-inc/atrium/internal/interfaces/http/handlers/notification"
	"github.com/atrium-inc/atrium/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(middleware.Identity())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.POST("/endpoints", config.NotificationHandler.RegisterEndpoint)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
