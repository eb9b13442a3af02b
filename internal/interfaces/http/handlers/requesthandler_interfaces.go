package handlers

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/application/request/usecases"
)

// Use case interfaces for RequestHandler

type submitRequestUseCase interface {
	Execute(ctx context.Context, requesterID uint, req dto.SubmitRequestRequest) (*dto.RequestResponse, error)
}

type listRequestsUseCase interface {
	Execute(ctx context.Context, query usecases.ListRequestsQuery) (*dto.ListRequestsResponse, error)
}

type processRequestUseCase interface {
	Execute(ctx context.Context, cmd usecases.ProcessRequestCommand) (*dto.RequestResponse, error)
}
