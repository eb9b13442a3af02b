package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type ProcessRequestCommand struct {
	RequestID uint
	Status    string
	// ProcessedBy is the admin's username.
	ProcessedBy string
}

type ProcessRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewProcessRequestUseCase(requestRepo request.Repository, logger logger.Interface) *ProcessRequestUseCase {
	return &ProcessRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ProcessRequestUseCase) Execute(ctx context.Context, cmd ProcessRequestCommand) (*dto.RequestResponse, error) {
	uc.logger.Infow("executing process request use case",
		"request_id", cmd.RequestID,
		"status", cmd.Status,
		"processed_by", cmd.ProcessedBy,
	)

	target, err := request.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	r, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", cmd.RequestID, "error", err)
		return nil, toAppError(err)
	}
	if r == nil {
		return nil, toAppError(request.ErrRequestNotFound)
	}

	from := r.Status()
	if err := r.Process(target, cmd.ProcessedBy, biztime.NowUTC()); err != nil {
		uc.logger.Warnw("request status change rejected", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Zero rows still in the old status surface as ErrRequestNotFound.
	if err := uc.requestRepo.UpdateStatus(ctx, r, from); err != nil {
		uc.logger.Errorw("failed to update request status", "request_id", cmd.RequestID, "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("request processed successfully",
		"request_id", r.ID(),
		"from", from,
		"to", r.Status(),
	)

	resp := dto.ToRequestResponse(r)
	return &resp, nil
}
