package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// SettingsHandler serves the signed-in user's own account settings.
type SettingsHandler struct {
	changeUsernameUC changeUsernameUseCase
	changePasswordUC changePasswordUseCase
	deleteAccountUC  deleteAccountUseCase
	logger           logger.Interface
}

func NewSettingsHandler(
	changeUsernameUC changeUsernameUseCase,
	changePasswordUC changePasswordUseCase,
	deleteAccountUC deleteAccountUseCase,
	logger logger.Interface,
) *SettingsHandler {
	return &SettingsHandler{
		changeUsernameUC: changeUsernameUC,
		changePasswordUC: changePasswordUC,
		deleteAccountUC:  deleteAccountUC,
		logger:           logger,
	}
}

// ChangeUsername handles PUT /settings/username
func (h *SettingsHandler) ChangeUsername(c *gin.Context) {
	userID, err := getUserIDFromContext(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change username", "user_id", userID, "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	user, err := h.changeUsernameUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Username updated, sign in again to refresh your token", user)
}

// ChangePassword handles PUT /settings/password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserIDFromContext(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "user_id", userID, "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

// DeleteAccount handles DELETE /settings/account
func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserIDFromContext(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.deleteAccountUC.Execute(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("account deleted", "user_id", userID)
	utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}
