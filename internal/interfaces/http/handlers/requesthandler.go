package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/application/request/usecases"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

type RequestHandler struct {
	submitUC  submitRequestUseCase
	listUC    listRequestsUseCase
	processUC processRequestUseCase
	logger    logger.Interface
}

func NewRequestHandler(
	submitUC submitRequestUseCase,
	listUC listRequestsUseCase,
	processUC processRequestUseCase,
	logger logger.Interface,
) *RequestHandler {
	return &RequestHandler{
		submitUC:  submitUC,
		listUC:    listUC,
		processUC: processUC,
		logger:    logger,
	}
}

// SubmitRequest handles POST /requests
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	userID, err := getUserIDFromContext(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit request", "user_id", userID, "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request submitted successfully")
}

// ListMine handles GET /requests/mine
func (h *RequestHandler) ListMine(c *gin.Context) {
	h.list(c, usecases.ScopeMine)
}

// ListPending handles GET /requests/pending
func (h *RequestHandler) ListPending(c *gin.Context) {
	h.list(c, usecases.ScopePending)
}

// ListProcessed handles GET /requests/processed
func (h *RequestHandler) ListProcessed(c *gin.Context) {
	h.list(c, usecases.ScopeProcessed)
}

func (h *RequestHandler) list(c *gin.Context, scope usecases.Scope) {
	userID, err := getUserIDFromContext(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope:    scope,
		UserID:   userID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ProcessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.processUC.Execute(c.Request.Context(), usecases.ProcessRequestCommand{
		RequestID:   requestID,
		Status:      req.Status,
		ProcessedBy: actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated", result)
}
