package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/mappers"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/db"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type CustomerRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.Repository {
	return &CustomerRepository{db: db, logger: logger}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return customer.ErrCustomerNameExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return mappers.CustomerToDomain(&model)
}

func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*customer.Customer, error) {
	out := make(map[uint]*customer.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", uniqueIDs(ids)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	for i := range rows {
		c, err := mappers.CustomerToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[c.ID()] = c
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"contact_person": model.ContactPerson,
			"email":          model.Email,
			"phone":          model.Phone,
			"location":       model.Location,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return customer.ErrCustomerNameExists
		}
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	// RowsAffected may be 0 when nothing changed, so it is not a not-found signal here.
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return customer.ErrCustomerInUse
		}
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

// List orders customers by name.
func (r *CustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{})
	if filter.Search != "" {
		like := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name LIKE ? OR contact_person LIKE ? OR location LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var rows []models.CustomerModel
	if err := paginate(query.Order("name ASC"), filter.Page, filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	out := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		c, err := mappers.CustomerToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, nil
}

func (r *CustomerRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer name: %w", err)
	}
	return count > 0, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
