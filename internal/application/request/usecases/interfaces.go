package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/request/dto"
)

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, requesterID uint, req dto.SubmitRequestRequest) (*dto.RequestResponse, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*dto.ListRequestsResponse, error)
}

type ProcessRequestExecutor interface {
	Execute(ctx context.Context, cmd ProcessRequestCommand) (*dto.RequestResponse, error)
}
