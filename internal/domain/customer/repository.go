package customer

import "context"

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Customer, int64, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}
