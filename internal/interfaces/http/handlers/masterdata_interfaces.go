package handlers

import (
	"context"

	customerdto "github.com/corpit/licensedesk/internal/application/customer/dto"
	productdto "github.com/corpit/licensedesk/internal/application/product/dto"
)

// Use case interfaces for CustomerHandler

type createCustomerUseCase interface {
	Execute(ctx context.Context, req customerdto.CustomerRequest) (*customerdto.CustomerResponse, error)
}

type updateCustomerUseCase interface {
	Execute(ctx context.Context, id uint, req customerdto.CustomerRequest) (*customerdto.CustomerResponse, error)
}

type getCustomerUseCase interface {
	Execute(ctx context.Context, id uint) (*customerdto.CustomerResponse, error)
}

type listCustomersUseCase interface {
	Execute(ctx context.Context, req customerdto.ListCustomersRequest) (*customerdto.ListCustomersResponse, error)
}

type deleteCustomerUseCase interface {
	Execute(ctx context.Context, id uint) error
}

// Use case interfaces for ProductHandler

type createProductUseCase interface {
	Execute(ctx context.Context, req productdto.ProductRequest) (*productdto.ProductResponse, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, id uint, req productdto.ProductRequest) (*productdto.ProductResponse, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, id uint) (*productdto.ProductResponse, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, req productdto.ListProductsRequest) (*productdto.ListProductsResponse, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, id uint) error
}
