package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atrium-inc/atrium/internal/application/notification/usecases"
	"github.com/atrium-inc/atrium/internal/interfaces/http/middleware"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
	"github.com/atrium-inc/atrium/internal/shared/utils"
)

type NotificationHandler struct {
	registerUC usecases.RegisterEndpointExecutor
	markReadUC usecases.MarkNotificationReadExecutor
	listUC     usecases.ListNotificationsExecutor
	logger     logger.Interface
}

func NewNotificationHandler(
	registerUC usecases.RegisterEndpointExecutor,
	markReadUC usecases.MarkNotificationReadExecutor,
	listUC usecases.ListNotificationsExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		registerUC: registerUC,
		markReadUC: markReadUC,
		listUC:     listUC,
		logger:     logger.NewLogger(),
	}
}

type RegisterEndpointRequest struct {
	Token              string `json:"token" binding:"max=500"`
	EndpointURL        string `json:"endpoint_url" binding:"required,max=500"`
	P256dhKey          string `json:"p256dh_key" binding:"max=255"`
	AuthKey            string `json:"auth_key" binding:"max=255"`
	BrowserFingerprint string `json:"browser_fingerprint" binding:"max=100"`
}

// RegisterEndpoint handles POST /notifications/endpoints
func (h *NotificationHandler) RegisterEndpoint(c *gin.Context) {
	var req RegisterEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register endpoint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidatePushEndpointURL(req.EndpointURL); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterEndpointCommand{
		UserID:             middleware.CurrentUserID(c),
		Token:              req.Token,
		EndpointURL:        req.EndpointURL,
		P256dhKey:          req.P256dhKey,
		AuthKey:            req.AuthKey,
		BrowserFingerprint: req.BrowserFingerprint,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Push endpoint registered")
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     middleware.CurrentUserID(c),
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid notification ID"))
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: uint(id),
		UserID:         middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}
