package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
)

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error)
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.CustomerResponse, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, req dto.ListCustomersRequest) (*dto.ListCustomersResponse, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, id uint) error
}
