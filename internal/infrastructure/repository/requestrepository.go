package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/mappers"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/db"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) request.Repository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	model := mappers.RequestToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return req.SetID(model.ID)
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return mappers.RequestToDomain(&model)
}

// UpdateStatus is a compare-and-set on the status column. A request that was
// processed concurrently no longer matches and reports ErrRequestNotFound.
func (r *RequestRepository) UpdateStatus(ctx context.Context, req *request.Request, from request.Status) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RequestModel{}).
		Where("id = ? AND status = ?", req.ID(), from.String()).
		Updates(map[string]interface{}{
			"status":       req.Status().String(),
			"processed_by": req.ProcessedBy(),
			"processed_at": req.ProcessedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) List(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{})

	if filter.RequestedBy != nil {
		query = query.Where("requested_by = ?", *filter.RequestedBy)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Processed {
		query = query.Where("processed_at IS NOT NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	if filter.Processed {
		query = query.Order("processed_at DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var rows []models.RequestModel
	if err := paginate(query.Order("id DESC"), filter.Page, filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	out := make([]*request.Request, 0, len(rows))
	for i := range rows {
		req, err := mappers.RequestToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, req)
	}
	return out, total, nil
}
