package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/mapper"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// Scope selects which requests a listing returns.
type Scope int

const (
	// ScopeMine lists the caller's own requests, newest first.
	ScopeMine Scope = iota
	// ScopePending lists requests still awaiting a decision.
	ScopePending
	// ScopeProcessed lists settled requests, most recently processed first.
	ScopeProcessed
)

type ListRequestsQuery struct {
	Scope    Scope
	UserID   uint
	Page     int
	PageSize int
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*dto.ListRequestsResponse, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := request.ListFilter{Page: p.Page, PageSize: p.PageSize}

	switch query.Scope {
	case ScopeMine:
		userID := query.UserID
		filter.RequestedBy = &userID
	case ScopePending:
		filter.Statuses = []request.Status{request.StatusPending, request.StatusInProgress}
	case ScopeProcessed:
		filter.Statuses = []request.Status{request.StatusApproved, request.StatusCompleted, request.StatusRejected}
		filter.Processed = true
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "scope", query.Scope, "error", err)
		return nil, toAppError(err)
	}

	items := mapper.MapSlice(requests, dto.ToRequestResponse)
	if items == nil {
		items = []dto.RequestResponse{}
	}

	return &dto.ListRequestsResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
