package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/constants"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type ListLicensesQuery struct {
	CustomerID  *uint
	ProductID   *uint
	ProductType string
	Status      string
	// Within overrides the expiring-soon threshold for this query.
	Within   *int
	Page     int
	PageSize int
}

type ListLicensesResult struct {
	Licenses []dto.LicenseDTO `json:"licenses"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListLicensesUseCase struct {
	licenseRepo  license.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	settings     Settings
	logger       logger.Interface
}

func NewListLicensesUseCase(
	licenseRepo license.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	settings Settings,
	logger logger.Interface,
) *ListLicensesUseCase {
	return &ListLicensesUseCase{
		licenseRepo:  licenseRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *ListLicensesUseCase) Execute(ctx context.Context, query ListLicensesQuery) (*ListLicensesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	threshold := uc.settings.threshold()
	if query.Within != nil {
		if *query.Within < 0 {
			return nil, errors.NewValidationError("within must not be negative")
		}
		threshold = *query.Within
	}
	today := uc.settings.today()

	filter := license.ListFilter{
		CustomerID: query.CustomerID,
		ProductID:  query.ProductID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     "expiry_date",
	}

	if query.ProductType != "" {
		typ, err := product.ParseType(query.ProductType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		s := string(typ)
		filter.ProductType = &s
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !vo.ValidStatuses[status] {
			return nil, errors.NewValidationError("status must be one of active, expiring_soon, expired")
		}
		filter.ExpiryFrom, filter.ExpiryTo = license.ExpiryWindow(status, today, threshold)
	}

	licenses, total, err := uc.licenseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list licenses", "error", err)
		return nil, toAppError(err)
	}

	refs, err := loadLookups(ctx, uc.customerRepo, uc.productRepo, licenses)
	if err != nil {
		uc.logger.Errorw("failed to load license references", "error", err)
		return nil, toAppError(err)
	}

	items := make([]dto.LicenseDTO, 0, len(licenses))
	for _, l := range licenses {
		items = append(items, *dto.ToLicenseDTO(l, refs.customers[l.CustomerID()], refs.products[l.ProductID()], today, threshold))
	}

	return &ListLicensesResult{
		Licenses: items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
