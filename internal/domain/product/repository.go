package product

import "context"

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}

type ListFilter struct {
	Type     *Type
	Search   string
	Page     int
	PageSize int
}
