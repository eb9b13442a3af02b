package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
)

type IssueLicenseExecutor interface {
	Execute(ctx context.Context, cmd IssueLicenseCommand) (*dto.LicenseDTO, error)
}

type UpgradeLicenseExecutor interface {
	Execute(ctx context.Context, cmd UpgradeLicenseCommand) (*dto.LicenseDTO, error)
}

type RenewLicenseExecutor interface {
	Execute(ctx context.Context, cmd RenewLicenseCommand) (*RenewLicenseResult, error)
}

type DeleteLicenseExecutor interface {
	Execute(ctx context.Context, cmd DeleteLicenseCommand) error
}

type GetLicenseExecutor interface {
	Execute(ctx context.Context, query GetLicenseQuery) (*dto.LicenseDetailDTO, error)
}

type ListLicensesExecutor interface {
	Execute(ctx context.Context, query ListLicensesQuery) (*ListLicensesResult, error)
}

type ListRenewalsExecutor interface {
	Execute(ctx context.Context, query ListRenewalsQuery) ([]dto.RenewalDTO, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context) (*dto.DashboardStatsDTO, error)
}
