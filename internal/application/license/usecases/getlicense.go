package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type GetLicenseQuery struct {
	LicenseID uint
}

type GetLicenseUseCase struct {
	licenseRepo  license.Repository
	renewalRepo  license.RenewalRepository
	eventRepo    license.EventRepository
	customerRepo customer.Repository
	productRepo  product.Repository
	settings     Settings
	logger       logger.Interface
}

func NewGetLicenseUseCase(
	licenseRepo license.Repository,
	renewalRepo license.RenewalRepository,
	eventRepo license.EventRepository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	settings Settings,
	logger logger.Interface,
) *GetLicenseUseCase {
	return &GetLicenseUseCase{
		licenseRepo:  licenseRepo,
		renewalRepo:  renewalRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *GetLicenseUseCase) Execute(ctx context.Context, query GetLicenseQuery) (*dto.LicenseDetailDTO, error) {
	if query.LicenseID == 0 {
		return nil, errors.NewValidationError("license ID is required")
	}

	l, err := uc.licenseRepo.GetByID(ctx, query.LicenseID)
	if err != nil {
		uc.logger.Errorw("failed to get license", "license_id", query.LicenseID, "error", err)
		return nil, toAppError(err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("license not found")
	}

	cust, err := uc.customerRepo.GetByID(ctx, l.CustomerID())
	if err != nil {
		return nil, toAppError(err)
	}
	prod, err := uc.productRepo.GetByID(ctx, l.ProductID())
	if err != nil {
		return nil, toAppError(err)
	}

	renewals, err := uc.renewalRepo.HistoryFor(ctx, l.ID())
	if err != nil {
		uc.logger.Errorw("failed to load renewal history", "license_id", l.ID(), "error", err)
		return nil, toAppError(err)
	}

	events, err := uc.eventRepo.ListByLicenseID(ctx, l.ID())
	if err != nil {
		uc.logger.Errorw("failed to load lifecycle events", "license_id", l.ID(), "error", err)
		return nil, toAppError(err)
	}

	return &dto.LicenseDetailDTO{
		LicenseDTO: *dto.ToLicenseDTO(l, cust, prod, uc.settings.today(), uc.settings.threshold()),
		Renewals:   dto.ToRenewalDTOs(renewals),
		Events:     dto.ToEventDTOs(events),
	}, nil
}
