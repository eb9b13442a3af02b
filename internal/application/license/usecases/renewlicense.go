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
	"github.com/corpit/licensedesk/internal/shared/id"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type RenewLicenseCommand struct {
	LicenseID      uint
	Quantity       int
	ValidityMonths int
	Amount         decimal.Decimal
	Currency       string
	// DueDate defaults to the end of the new term.
	DueDate            string
	Status             string
	InvoiceNo          string
	ConfirmationStatus string
	Remarks            string
	// RenewedOn defaults to today.
	RenewedOn string
	Actor     string
}

type RenewLicenseResult struct {
	License *dto.LicenseDTO `json:"license"`
	Renewal dto.RenewalDTO  `json:"renewal"`
}

type RenewLicenseUseCase struct {
	licenseRepo  license.Repository
	renewalRepo  license.RenewalRepository
	eventRepo    license.EventRepository
	customerRepo customer.Repository
	productRepo  product.Repository
	tx           db.TxRunner
	settings     Settings
	logger       logger.Interface
}

func NewRenewLicenseUseCase(
	licenseRepo license.Repository,
	renewalRepo license.RenewalRepository,
	eventRepo license.EventRepository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	tx db.TxRunner,
	settings Settings,
	logger logger.Interface,
) *RenewLicenseUseCase {
	return &RenewLicenseUseCase{
		licenseRepo:  licenseRepo,
		renewalRepo:  renewalRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
		settings:     settings,
		logger:       logger,
	}
}

func (uc *RenewLicenseUseCase) Execute(ctx context.Context, cmd RenewLicenseCommand) (*RenewLicenseResult, error) {
	uc.logger.Infow("executing renew license use case",
		"license_id", cmd.LicenseID,
		"quantity", cmd.Quantity,
		"validity_months", cmd.ValidityMonths,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid renew license command", "error", err)
		return nil, err
	}

	terms, err := uc.buildTerms(cmd)
	if err != nil {
		return nil, err
	}

	var (
		renewed *license.License
		entry   *license.Renewal
	)

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		l, err := uc.licenseRepo.GetByID(txCtx, cmd.LicenseID)
		if err != nil {
			return err
		}
		if l == nil {
			return license.ErrLicenseNotFound
		}

		before := l.Snapshot()
		renewal, err := l.Renew(terms)
		if err != nil {
			return err
		}

		if renewal.InvoiceNo() == "" {
			invoiceNo, err := id.NewInvoiceNo()
			if err != nil {
				return err
			}
			renewal.AssignInvoiceNo(invoiceNo)
		}

		if err := uc.licenseRepo.Update(txCtx, l); err != nil {
			return err
		}
		if err := uc.renewalRepo.Record(txCtx, renewal); err != nil {
			return err
		}

		event, err := license.NewEvent(l.ID(), license.EventTypeRenewed, cmd.Actor, before, l.Snapshot())
		if err != nil {
			return err
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return err
		}

		renewed = l
		entry = renewal
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to renew license", "license_id", cmd.LicenseID, "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("license renewed successfully",
		"license_id", renewed.ID(),
		"renewal_id", entry.ID(),
		"expiry_date", renewed.ExpiryDate(),
		"invoice_no", entry.InvoiceNo(),
	)

	cust, err := uc.customerRepo.GetByID(ctx, renewed.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for renewed license", "license_id", renewed.ID(), "error", err)
	}
	prod, err := uc.productRepo.GetByID(ctx, renewed.ProductID())
	if err != nil {
		uc.logger.Warnw("failed to load product for renewed license", "license_id", renewed.ID(), "error", err)
	}

	return &RenewLicenseResult{
		License: dto.ToLicenseDTO(renewed, cust, prod, uc.settings.today(), uc.settings.threshold()),
		Renewal: dto.ToRenewalDTO(entry),
	}, nil
}

func (uc *RenewLicenseUseCase) buildTerms(cmd RenewLicenseCommand) (license.RenewalTerms, error) {
	renewedOn := uc.settings.today()
	if d, err := parseOptionalDate("renewed_on", cmd.RenewedOn); err != nil {
		return license.RenewalTerms{}, err
	} else if d != nil {
		renewedOn = *d
	}

	dueDate, err := parseOptionalDate("due_date", cmd.DueDate)
	if err != nil {
		return license.RenewalTerms{}, err
	}

	amount, err := vo.NewMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return license.RenewalTerms{}, errors.NewValidationError(err.Error())
	}

	status, err := vo.ParseRenewalStatus(cmd.Status)
	if err != nil {
		return license.RenewalTerms{}, errors.NewValidationError(err.Error())
	}

	confirmation, err := vo.ParseConfirmationStatus(cmd.ConfirmationStatus)
	if err != nil {
		return license.RenewalTerms{}, errors.NewValidationError(err.Error())
	}

	return license.RenewalTerms{
		RenewedOn:      renewedOn,
		Quantity:       cmd.Quantity,
		ValidityMonths: cmd.ValidityMonths,
		Amount:         amount,
		DueDate:        dueDate,
		Status:         status,
		InvoiceNo:      cmd.InvoiceNo,
		Confirmation:   confirmation,
		Remarks:        cmd.Remarks,
	}, nil
}

func (uc *RenewLicenseUseCase) validateCommand(cmd RenewLicenseCommand) error {
	if cmd.LicenseID == 0 {
		return errors.NewValidationError("license ID is required")
	}
	if cmd.Quantity <= 0 {
		return errors.NewValidationError("quantity must be greater than zero")
	}
	if cmd.ValidityMonths < license.MinValidityMonths {
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
