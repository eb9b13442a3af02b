package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type ListRenewalsQuery struct {
	LicenseID uint
}

type ListRenewalsUseCase struct {
	renewalRepo license.RenewalRepository
	logger      logger.Interface
}

func NewListRenewalsUseCase(renewalRepo license.RenewalRepository, logger logger.Interface) *ListRenewalsUseCase {
	return &ListRenewalsUseCase{
		renewalRepo: renewalRepo,
		logger:      logger,
	}
}

// Execute returns the renewal history newest due date first. A deleted license has none.
func (uc *ListRenewalsUseCase) Execute(ctx context.Context, query ListRenewalsQuery) ([]dto.RenewalDTO, error) {
	if query.LicenseID == 0 {
		return nil, errors.NewValidationError("license ID is required")
	}

	renewals, err := uc.renewalRepo.HistoryFor(ctx, query.LicenseID)
	if err != nil {
		uc.logger.Errorw("failed to load renewal history", "license_id", query.LicenseID, "error", err)
		return nil, toAppError(err)
	}
	return dto.ToRenewalDTOs(renewals), nil
}
