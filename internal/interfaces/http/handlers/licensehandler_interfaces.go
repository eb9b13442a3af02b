package handlers

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/application/license/usecases"
)

// Use case interfaces for LicenseHandler and DashboardHandler

type issueLicenseUseCase interface {
	Execute(ctx context.Context, cmd usecases.IssueLicenseCommand) (*dto.LicenseDTO, error)
}

type upgradeLicenseUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpgradeLicenseCommand) (*dto.LicenseDTO, error)
}

type renewLicenseUseCase interface {
	Execute(ctx context.Context, cmd usecases.RenewLicenseCommand) (*usecases.RenewLicenseResult, error)
}

type deleteLicenseUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteLicenseCommand) error
}

type getLicenseUseCase interface {
	Execute(ctx context.Context, query usecases.GetLicenseQuery) (*dto.LicenseDetailDTO, error)
}

type listLicensesUseCase interface {
	Execute(ctx context.Context, query usecases.ListLicensesQuery) (*usecases.ListLicensesResult, error)
}

type listRenewalsUseCase interface {
	Execute(ctx context.Context, query usecases.ListRenewalsQuery) ([]dto.RenewalDTO, error)
}

type getDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*dto.DashboardStatsDTO, error)
}
