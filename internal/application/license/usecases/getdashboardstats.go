package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

const recentActivityDays = 7

type GetDashboardStatsUseCase struct {
	licenseRepo  license.Repository
	eventRepo    license.EventRepository
	customerRepo customer.Repository
	settings     Settings
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	licenseRepo license.Repository,
	eventRepo license.EventRepository,
	customerRepo customer.Repository,
	settings Settings,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		licenseRepo:  licenseRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		settings:     settings,
		logger:       logger,
	}
}

// Execute counts active licenses as those with expiry on or after today, so
// expiring-soon licenses are included in the active total.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	today := uc.settings.today()
	threshold := uc.settings.threshold()

	customers, err := uc.customerRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count customers", "error", err)
		return nil, toAppError(err)
	}

	active, err := uc.licenseRepo.CountByExpiry(ctx, &today, nil)
	if err != nil {
		uc.logger.Errorw("failed to count active licenses", "error", err)
		return nil, toAppError(err)
	}

	_, expiredTo := license.ExpiryWindow(vo.StatusExpired, today, threshold)
	expired, err := uc.licenseRepo.CountByExpiry(ctx, nil, expiredTo)
	if err != nil {
		uc.logger.Errorw("failed to count expired licenses", "error", err)
		return nil, toAppError(err)
	}

	soonFrom, soonTo := license.ExpiryWindow(vo.StatusExpiringSoon, today, threshold)
	expiringSoon, err := uc.licenseRepo.CountByExpiry(ctx, soonFrom, soonTo)
	if err != nil {
		uc.logger.Errorw("failed to count expiring licenses", "error", err)
		return nil, toAppError(err)
	}

	since := biztime.DayStartUTC(today.AddDate(0, 0, -recentActivityDays))
	issued, err := uc.eventRepo.CountByTypeSince(ctx, license.EventTypeIssued, since)
	if err != nil {
		return nil, toAppError(err)
	}
	renewed, err := uc.eventRepo.CountByTypeSince(ctx, license.EventTypeRenewed, since)
	if err != nil {
		return nil, toAppError(err)
	}

	return &dto.DashboardStatsDTO{
		TotalCustomers:       customers,
		ActiveLicenses:       active,
		ExpiredLicenses:      expired,
		ExpiringSoonLicenses: expiringSoon,
		ExpiringSoonDays:     threshold,
		IssuedLast7Days:      issued,
		RenewedLast7Days:     renewed,
		AsOf:                 biztime.FormatDate(today),
	}, nil
}
