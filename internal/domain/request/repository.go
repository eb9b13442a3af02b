package request

import "context"

type Repository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	// UpdateStatus writes the status change only while the stored status is still from.
	UpdateStatus(ctx context.Context, request *Request, from Status) error
	List(ctx context.Context, filter ListFilter) ([]*Request, int64, error)
}

type ListFilter struct {
	RequestedBy *uint
	Statuses    []Status
	// Processed selects settled requests ordered by processed_at desc.
	Processed bool
	Page      int
	PageSize  int
}
