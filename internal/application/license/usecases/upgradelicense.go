package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/db"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type UpgradeLicenseCommand struct {
	LicenseID          uint
	AdditionalQuantity int
	AdditionalAmount   decimal.Decimal
	// Currency may be empty when the license carries a single currency.
	Currency string
	Remarks  string
	Actor    string
}

type UpgradeLicenseUseCase struct {
	licenseRepo  license.Repository
	eventRepo    license.EventRepository
	customerRepo customer.Repository
	productRepo  product.Repository
	tx           db.TxRunner
	settings     Settings
	logger       logger.Interface
}

func NewUpgradeLicenseUseCase(
	licenseRepo license.Repository,
	eventRepo license.EventRepository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	tx db.TxRunner,
	settings Settings,
	logger logger.Interface,
) *UpgradeLicenseUseCase {
	return &UpgradeLicenseUseCase{
		licenseRepo:  licenseRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *UpgradeLicenseUseCase) Execute(ctx context.Context, cmd UpgradeLicenseCommand) (*dto.LicenseDTO, error) {
	uc.logger.Infow("executing upgrade license use case",
		"license_id", cmd.LicenseID,
		"additional_quantity", cmd.AdditionalQuantity,
		"additional_amount", cmd.AdditionalAmount.String(),
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid upgrade license command", "error", err)
		return nil, err
	}

	today := uc.settings.today()
	var upgraded *license.License

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		l, err := uc.licenseRepo.GetByID(txCtx, cmd.LicenseID)
		if err != nil {
			return err
		}
		if l == nil {
			return license.ErrLicenseNotFound
		}

		before := l.Snapshot()
		if err := l.Upgrade(cmd.AdditionalQuantity, cmd.AdditionalAmount, cmd.Currency, cmd.Remarks, today); err != nil {
			return err
		}

		if err := uc.licenseRepo.Update(txCtx, l); err != nil {
			return err
		}

		event, err := license.NewEvent(l.ID(), license.EventTypeUpgraded, cmd.Actor, before, l.Snapshot())
		if err != nil {
			return err
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return err
		}

		upgraded = l
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to upgrade license", "license_id", cmd.LicenseID, "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("license upgraded successfully",
		"license_id", upgraded.ID(),
		"quantity", upgraded.Quantity(),
		"version", upgraded.Version(),
	)

	cust, err := uc.customerRepo.GetByID(ctx, upgraded.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for upgraded license", "license_id", upgraded.ID(), "error", err)
	}
	prod, err := uc.productRepo.GetByID(ctx, upgraded.ProductID())
	if err != nil {
		uc.logger.Warnw("failed to load product for upgraded license", "license_id", upgraded.ID(), "error", err)
	}

	return dto.ToLicenseDTO(upgraded, cust, prod, today, uc.settings.threshold()), nil
}

func (uc *UpgradeLicenseUseCase) validateCommand(cmd UpgradeLicenseCommand) error {
	if cmd.LicenseID == 0 {
		return errors.NewValidationError("license ID is required")
	}
	if cmd.AdditionalQuantity <= 0 {
		return errors.NewValidationError("additional quantity must be greater than zero")
	}
	if cmd.AdditionalAmount.IsNegative() {
		return errors.NewValidationError("additional amount must not be negative")
	}
	return nil
}
