package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

type DashboardHandler struct {
	statsUC getDashboardStatsUseCase
	logger  logger.Interface
}

func NewDashboardHandler(statsUC getDashboardStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, logger: logger}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
