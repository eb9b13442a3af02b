package usecases

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/corpit/licensedesk/internal/application/license/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/db"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type IssueLicenseCommand struct {
	CustomerID       uint
	ProductID        uint
	Quantity         int
	IssueDate        string
	InstallationDate string
	// ValidityMonths falls back to the product's default validity when nil.
	ValidityMonths *int
	Amount         decimal.Decimal
	Currency       string
	Remarks        string
	Actor          string
}

type IssueLicenseUseCase struct {
	licenseRepo  license.Repository
	eventRepo    license.EventRepository
	customerRepo customer.Repository
	productRepo  product.Repository
	tx           db.TxRunner
	settings     Settings
	logger       logger.Interface
}

func NewIssueLicenseUseCase(
	licenseRepo license.Repository,
	eventRepo license.EventRepository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	tx db.TxRunner,
	settings Settings,
	logger logger.Interface,
) *IssueLicenseUseCase {
	return &IssueLicenseUseCase{
		licenseRepo:  licenseRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *IssueLicenseUseCase) Execute(ctx context.Context, cmd IssueLicenseCommand) (*dto.LicenseDTO, error) {
	uc.logger.Infow("executing issue license use case",
		"customer_id", cmd.CustomerID,
		"product_id", cmd.ProductID,
		"quantity", cmd.Quantity,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid issue license command", "error", err)
		return nil, err
	}

	issueDate, err := parseOptionalDate("issue_date", cmd.IssueDate)
	if err != nil {
		return nil, err
	}
	installationDate, err := parseOptionalDate("installation_date", cmd.InstallationDate)
	if err != nil {
		return nil, err
	}

	amount, err := vo.NewMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		issued *license.License
		cust   *customer.Customer
		prod   *product.Product
	)

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		cust, err = uc.customerRepo.GetByID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if cust == nil {
			return errors.NewNotFoundError("customer not found")
		}

		prod, err = uc.productRepo.GetByID(txCtx, cmd.ProductID)
		if err != nil {
			return err
		}
		if prod == nil {
			return errors.NewNotFoundError("product not found")
		}

		existing, err := uc.licenseRepo.GetByCustomerAndProduct(txCtx, cmd.CustomerID, cmd.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return license.ErrDuplicateFor(cmd.CustomerID, cmd.ProductID)
		}

		validity := prod.DefaultValidityMonths()
		if cmd.ValidityMonths != nil {
			validity = *cmd.ValidityMonths
		}

		newLicense, err := license.NewLicense(
			cmd.CustomerID,
			cmd.ProductID,
			cmd.Quantity,
			*issueDate,
			installationDate,
			validity,
			amount,
			cmd.Remarks,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.licenseRepo.Create(txCtx, newLicense); err != nil {
			return err
		}

		event, err := license.NewEvent(newLicense.ID(), license.EventTypeIssued, cmd.Actor, nil, newLicense.Snapshot())
		if err != nil {
			return err
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return err
		}

		issued = newLicense
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to issue license",
			"customer_id", cmd.CustomerID,
			"product_id", cmd.ProductID,
			"error", err,
		)
		return nil, toAppError(err)
	}

	uc.logger.Infow("license issued successfully",
		"license_id", issued.ID(),
		"expiry_date", issued.ExpiryDate(),
	)

	return dto.ToLicenseDTO(issued, cust, prod, uc.settings.today(), uc.settings.threshold()), nil
}

func (uc *IssueLicenseUseCase) validateCommand(cmd IssueLicenseCommand) error {
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer is required")
	}
	if cmd.ProductID == 0 {
		return errors.NewValidationError("product is required")
	}
	if cmd.Quantity <= 0 {
		return errors.NewValidationError("quantity must be greater than zero")
	}
	if cmd.IssueDate == "" {
		return errors.NewValidationError("issue date is required")
	}
	if cmd.ValidityMonths != nil && *cmd.ValidityMonths < license.MinValidityMonths {
		return errors.NewValidationError("validity period must be at least one month")
	}
	if !cmd.Amount.IsPositive() {
		return errors.NewValidationError("amount must be greater than zero")
	}
	if strings.TrimSpace(cmd.Currency) == "" {
		return errors.NewValidationError("currency is required")
	}
	return nil
}
