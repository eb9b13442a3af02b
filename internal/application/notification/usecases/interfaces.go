package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
)

type ListExpiringExecutor interface {
	Execute(ctx context.Context, req dto.ListExpiringRequest) (*dto.ExpiringLicensesResponse, error)
}

type SendRemindersExecutor interface {
	Execute(ctx context.Context, req dto.SendRemindersRequest) (*dto.SendRemindersResponse, error)
}

type SendTestReminderExecutor interface {
	Execute(ctx context.Context, req dto.SendTestReminderRequest) (*dto.ReminderOutcome, error)
}

type RunRemindersExecutor interface {
	Execute(ctx context.Context, cmd RunRemindersCommand) (*dto.SendRemindersResponse, error)
}

var (
	_ ListExpiringExecutor     = (*ListExpiringUseCase)(nil)
	_ SendRemindersExecutor    = (*SendRemindersUseCase)(nil)
	_ SendTestReminderExecutor = (*SendTestReminderUseCase)(nil)
	_ RunRemindersExecutor     = (*RunRemindersUseCase)(nil)
)
