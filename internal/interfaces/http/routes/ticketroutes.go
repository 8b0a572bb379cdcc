package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/atrium-inc/atrium/internal/interfaces/http/handlers/ticket"
	"github.com/atrium-inc/atrium/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	RateLimiter   *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(middleware.Identity())
	{
		// Specific paths registered before parameterized paths to avoid
		// route conflicts.
		create := config.TicketHandler.CreateTicket
		if config.RateLimiter != nil {
			tickets.POST("", config.RateLimiter.Limit(), create)
		} else {
			tickets.POST("", create)
		}
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/import", config.TicketHandler.ImportTickets)
		tickets.POST("/reassign", config.TicketHandler.BulkReassign)

		tickets.POST("/:id/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/pause", config.TicketHandler.PauseWork)
		tickets.GET("/:id/sla", config.TicketHandler.GetSLAProgress)
	}
}
