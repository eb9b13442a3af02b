package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

func TestUpgradeLicenseUseCase_Execute(t *testing.T) {
	customers, products := newRefs(t)
	existing := newTestLicense(t, 3, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 12, 5, "1000")

	var updated *license.License
	licenses := &mockLicenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*license.License, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, l *license.License) error {
			updated = l
			return nil
		},
	}
	events := &mockEventRepository{}

	uc := NewUpgradeLicenseUseCase(licenses, events, customers, products, &passthroughTx{}, testSettings(), logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), UpgradeLicenseCommand{
		LicenseID:          3,
		AdditionalQuantity: 3,
		AdditionalAmount:   decimal.NewFromInt(500),
		Remarks:            "three extra seats",
		Actor:              "admin",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 8, result.Quantity)
	assert.Equal(t, "1500", result.Amounts["USD"].String())
	assert.Equal(t, "2025-01-15", result.ExpiryDate, "upgrade must not move the term")
	assert.Equal(t, 2, result.Version)
	assert.Equal(t,
		"Upgraded on 2024-06-01: quantity 5→8, amount USD 1000.00→USD 1500.00, remarks: three extra seats",
		result.Remarks)

	require.Len(t, events.appended, 1)
	event := events.appended[0]
	assert.Equal(t, license.EventTypeUpgraded, event.EventType())
	assert.Equal(t, 5, event.Before().Quantity)
	assert.Equal(t, 8, event.After().Quantity)
}

func TestUpgradeLicenseUseCase_Errors(t *testing.T) {
	tests := []struct {
		name      string
		cmd       UpgradeLicenseCommand
		getErr    error
		found     bool
		updateErr error
		check     func(error) bool
	}{
		{
			name:  "zero additional quantity",
			cmd:   UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 0, AdditionalAmount: decimal.NewFromInt(10)},
			found: true,
			check: errors.IsValidationError,
		},
		{
			name:  "negative amount",
			cmd:   UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 1, AdditionalAmount: decimal.NewFromInt(-1)},
			found: true,
			check: errors.IsValidationError,
		},
		{
			name:  "license not found",
			cmd:   UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 1, AdditionalAmount: decimal.Zero},
			found: false,
			check: errors.IsNotFoundError,
		},
		{
			name:  "currency not carried",
			cmd:   UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 1, AdditionalAmount: decimal.NewFromInt(5), Currency: "EUR"},
			found: true,
			check: errors.IsValidationError,
		},
		{
			name:      "stale version",
			cmd:       UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 1, AdditionalAmount: decimal.Zero},
			found:     true,
			updateErr: license.ErrConcurrentModification,
			check:     errors.IsConflictError,
		},
		{
			name:   "store unreachable",
			cmd:    UpgradeLicenseCommand{LicenseID: 3, AdditionalQuantity: 1, AdditionalAmount: decimal.Zero},
			getErr: assert.AnError,
			check:  func(err error) bool { return err == assert.AnError },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, products := newRefs(t)
			licenses := &mockLicenseRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*license.License, error) {
					if tt.getErr != nil || !tt.found {
						return nil, tt.getErr
					}
					return newTestLicense(t, id, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 12, 5, "1000"), nil
				},
				UpdateFunc: func(ctx context.Context, l *license.License) error {
					return tt.updateErr
				},
			}
			events := &mockEventRepository{}

			uc := NewUpgradeLicenseUseCase(licenses, events, customers, products, &passthroughTx{}, testSettings(), logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
			assert.Empty(t, events.appended)
		})
	}
}
