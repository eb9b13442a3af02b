package usecases

import (
	"context"
	"sort"

	licensedto "github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// ListExpiringUseCase lists expired and expiring-soon licenses, soonest expiry first.
type ListExpiringUseCase struct {
	licenseRepo  license.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	settings     Settings
	logger       logger.Interface
}

func NewListExpiringUseCase(
	licenseRepo license.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	settings Settings,
	logger logger.Interface,
) *ListExpiringUseCase {
	return &ListExpiringUseCase{
		licenseRepo:  licenseRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *ListExpiringUseCase) Execute(ctx context.Context, req dto.ListExpiringRequest) (*dto.ExpiringLicensesResponse, error) {
	within := uc.settings.threshold()
	if req.Within != nil {
		if *req.Within < 0 {
			return nil, errors.NewValidationError("within must not be negative")
		}
		within = *req.Within
	}
	today := uc.settings.today()

	licenses, err := uc.licenseRepo.FindExpiringOnOrBefore(ctx, today.AddDate(0, 0, within))
	if err != nil {
		uc.logger.Errorw("failed to find expiring licenses", "within", within, "error", err)
		return nil, toAppError(err)
	}
	sort.SliceStable(licenses, func(i, j int) bool {
		return licenses[i].ExpiryDate().Before(licenses[j].ExpiryDate())
	})

	customers, products, err := loadRefs(ctx, uc.customerRepo, uc.productRepo, licenses)
	if err != nil {
		uc.logger.Errorw("failed to load license references", "error", err)
		return nil, toAppError(err)
	}

	items := make([]licensedto.LicenseDTO, 0, len(licenses))
	for _, l := range licenses {
		items = append(items, *licensedto.ToLicenseDTO(l, customers[l.CustomerID()], products[l.ProductID()], today, within))
	}

	return &dto.ExpiringLicensesResponse{
		Within:   within,
		AsOf:     biztime.FormatDate(today),
		Licenses: items,
	}, nil
}

func loadRefs(ctx context.Context, customerRepo customer.Repository, productRepo product.Repository, licenses []*license.License) (map[uint]*customer.Customer, map[uint]*product.Product, error) {
	customerIDs := make([]uint, 0, len(licenses))
	productIDs := make([]uint, 0, len(licenses))
	for _, l := range licenses {
		customerIDs = append(customerIDs, l.CustomerID())
		productIDs = append(productIDs, l.ProductID())
	}
	customers, err := customerRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		return nil, nil, err
	}
	products, err := productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, err
	}
	return customers, products, nil
}
