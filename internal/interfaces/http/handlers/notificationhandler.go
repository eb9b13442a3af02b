package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// NotificationHandler exposes expiry reminders to administrators.
type NotificationHandler struct {
	listExpiringUC     listExpiringUseCase
	sendRemindersUC    sendRemindersUseCase
	sendTestReminderUC sendTestReminderUseCase
	logger             logger.Interface
}

func NewNotificationHandler(
	listExpiringUC listExpiringUseCase,
	sendRemindersUC sendRemindersUseCase,
	sendTestReminderUC sendTestReminderUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listExpiringUC:     listExpiringUC,
		sendRemindersUC:    sendRemindersUC,
		sendTestReminderUC: sendTestReminderUC,
		logger:             logger,
	}
}

// ListExpiring handles GET /notifications/expiring?within=N
func (h *NotificationHandler) ListExpiring(c *gin.Context) {
	var req dto.ListExpiringRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.listExpiringUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendReminders handles POST /notifications/reminders. Per-license failures
// are reported in the outcome list; the request itself still succeeds.
func (h *NotificationHandler) SendReminders(c *gin.Context) {
	var req dto.SendRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send reminders", "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.sendRemindersUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("reminders sent",
		"requested_by", actorFromContext(c),
		"total", result.Total,
		"sent", result.Sent,
		"failed", result.Failed)
	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// SendTestReminder handles POST /notifications/reminders/test
func (h *NotificationHandler) SendTestReminder(c *gin.Context) {
	var req dto.SendTestReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.sendTestReminderUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test reminder sent to "+utils.MaskEmail(req.To), result)
}
