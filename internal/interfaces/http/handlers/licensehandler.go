package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/application/license/usecases"
	"github.com/corpit/licensedesk/internal/interfaces/dto"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

type LicenseHandler struct {
	issueUC        issueLicenseUseCase
	upgradeUC      upgradeLicenseUseCase
	renewUC        renewLicenseUseCase
	deleteUC       deleteLicenseUseCase
	getUC          getLicenseUseCase
	listUC         listLicensesUseCase
	listRenewalsUC listRenewalsUseCase
	logger         logger.Interface
}

func NewLicenseHandler(
	issueUC issueLicenseUseCase,
	upgradeUC upgradeLicenseUseCase,
	renewUC renewLicenseUseCase,
	deleteUC deleteLicenseUseCase,
	getUC getLicenseUseCase,
	listUC listLicensesUseCase,
	listRenewalsUC listRenewalsUseCase,
	logger logger.Interface,
) *LicenseHandler {
	return &LicenseHandler{
		issueUC:        issueUC,
		upgradeUC:      upgradeUC,
		renewUC:        renewUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		listUC:         listUC,
		listRenewalsUC: listRenewalsUC,
		logger:         logger,
	}
}

// IssueLicense handles POST /licenses
func (h *LicenseHandler) IssueLicense(c *gin.Context) {
	var req dto.IssueLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue license", "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.issueUC.Execute(c.Request.Context(), req.ToCommand(actorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "License issued successfully")
}

// ListLicenses handles GET /licenses
func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	var req dto.ListLicensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Licenses, result.Total, result.Page, result.PageSize)
}

// GetLicense handles GET /licenses/:id and includes renewal history and events.
func (h *LicenseHandler) GetLicense(c *gin.Context) {
	licenseID, err := utils.ParseUintParam(c, "id", "license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetLicenseQuery{LicenseID: licenseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpgradeLicense handles POST /licenses/:id/upgrade
func (h *LicenseHandler) UpgradeLicense(c *gin.Context) {
	licenseID, err := utils.ParseUintParam(c, "id", "license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpgradeLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upgrade license", "license_id", licenseID, "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.upgradeUC.Execute(c.Request.Context(), req.ToCommand(licenseID, actorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License upgraded successfully", result)
}

// RenewLicense handles POST /licenses/:id/renew
func (h *LicenseHandler) RenewLicense(c *gin.Context) {
	licenseID, err := utils.ParseUintParam(c, "id", "license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RenewLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew license", "license_id", licenseID, "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.renewUC.Execute(c.Request.Context(), req.ToCommand(licenseID, actorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License renewed successfully", result)
}

// DeleteLicense handles DELETE /licenses/:id
func (h *LicenseHandler) DeleteLicense(c *gin.Context) {
	licenseID, err := utils.ParseUintParam(c, "id", "license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteLicenseCommand{LicenseID: licenseID, Actor: actorFromContext(c)}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License deleted successfully", nil)
}

// ListRenewals handles GET /licenses/:id/renewals
func (h *LicenseHandler) ListRenewals(c *gin.Context) {
	licenseID, err := utils.ParseUintParam(c, "id", "license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	renewals, err := h.listRenewalsUC.Execute(c.Request.Context(), usecases.ListRenewalsQuery{LicenseID: licenseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", renewals)
}
