package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/product/dto"
)

type CreateProductExecutor interface {
	Execute(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
}

type UpdateProductExecutor interface {
	Execute(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error)
}

type GetProductExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.ProductResponse, error)
}

type ListProductsExecutor interface {
	Execute(ctx context.Context, req dto.ListProductsRequest) (*dto.ListProductsResponse, error)
}

type DeleteProductExecutor interface {
	Execute(ctx context.Context, id uint) error
}
