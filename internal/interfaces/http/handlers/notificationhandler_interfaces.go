package handlers

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
)

// Use case interfaces for NotificationHandler

type listExpiringUseCase interface {
	Execute(ctx context.Context, req dto.ListExpiringRequest) (*dto.ExpiringLicensesResponse, error)
}

type sendRemindersUseCase interface {
	Execute(ctx context.Context, req dto.SendRemindersRequest) (*dto.SendRemindersResponse, error)
}

type sendTestReminderUseCase interface {
	Execute(ctx context.Context, req dto.SendTestReminderRequest) (*dto.ReminderOutcome, error)
}
