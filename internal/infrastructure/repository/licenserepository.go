package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/mappers"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/constants"
	"github.com/corpit/licensedesk/internal/shared/db"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// allowedLicenseOrderByFields whitelists ORDER BY columns.
var allowedLicenseOrderByFields = map[string]bool{
	"id":          true,
	"issue_date":  true,
	"expiry_date": true,
	"quantity":    true,
	"created_at":  true,
	"updated_at":  true,
}

type LicenseRepository struct {
	db     *gorm.DB
	mapper mappers.LicenseMapper
	logger logger.Interface
}

func NewLicenseRepository(db *gorm.DB, logger logger.Interface) license.Repository {
	return &LicenseRepository{
		db:     db,
		mapper: mappers.NewLicenseMapper(),
		logger: logger,
	}
}

// Create relies on the (customer_id, product_id) unique index as the final
// guard against a concurrent duplicate issue.
func (r *LicenseRepository) Create(ctx context.Context, l *license.License) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return license.ErrDuplicateFor(l.CustomerID(), l.ProductID())
		}
		return fmt.Errorf("failed to create license: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *LicenseRepository) GetByID(ctx context.Context, id uint) (*license.License, error) {
	var model models.LicenseModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *LicenseRepository) GetByCustomerAndProduct(ctx context.Context, customerID, productID uint) (*license.License, error) {
	var model models.LicenseModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Update writes l only while the stored row still carries the version l was
// loaded with, which is l.Version()-1 after a mutation.
func (r *LicenseRepository) Update(ctx context.Context, l *license.License) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.LicenseModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"quantity":          model.Quantity,
			"issue_date":        model.IssueDate,
			"installation_date": model.InstallationDate,
			"validity_months":   model.ValidityMonths,
			"expiry_date":       model.ExpiryDate,
			"amounts":           model.Amounts,
			"remarks":           model.Remarks,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, model.ID)
		if err != nil {
			return err
		}
		if !exists {
			return license.ErrLicenseNotFound
		}
		return license.ErrConcurrentModification
	}
	return nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.LicenseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return license.ErrLicenseNotFound
	}
	return nil
}

func (r *LicenseRepository) List(ctx context.Context, filter license.ListFilter) ([]*license.License, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.LicenseModel{})

	if filter.CustomerID != nil {
		query = query.Where(constants.TableLicenses+".customer_id = ?", *filter.CustomerID)
	}
	if filter.ProductID != nil {
		query = query.Where(constants.TableLicenses+".product_id = ?", *filter.ProductID)
	}
	if filter.ProductType != nil {
		query = query.
			Joins("JOIN "+constants.TableProducts+" ON "+constants.TableProducts+".id = "+constants.TableLicenses+".product_id").
			Where(constants.TableProducts+".product_type = ?", *filter.ProductType)
	}
	query = withExpiryBounds(query, filter.ExpiryFrom, filter.ExpiryTo)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count licenses: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if !allowedLicenseOrderByFields[sortBy] {
		sortBy = "expiry_date"
	}
	order := " ASC"
	if filter.SortDesc {
		order = " DESC"
	}
	query = query.Order(constants.TableLicenses + "." + sortBy + order).Order(constants.TableLicenses + ".id ASC")

	var rows []models.LicenseModel
	if err := paginate(query.Select(constants.TableLicenses+".*"), filter.Page, filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list licenses: %w", err)
	}

	out, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *LicenseRepository) FindExpiringOnOrBefore(ctx context.Context, date time.Time) ([]*license.License, error) {
	var rows []models.LicenseModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("expiry_date <= ?", datatypes.Date(date)).
		Order("expiry_date ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring licenses: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *LicenseRepository) CountByExpiry(ctx context.Context, from, to *time.Time) (int64, error) {
	query := withExpiryBounds(db.GetTxFromContext(ctx, r.db).Model(&models.LicenseModel{}), from, to)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count licenses: %w", err)
	}
	return count, nil
}

func (r *LicenseRepository) CountByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID)
}

func (r *LicenseRepository) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	return r.countWhere(ctx, "product_id = ?", productID)
}

func (r *LicenseRepository) countWhere(ctx context.Context, cond string, arg interface{}) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.LicenseModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count licenses: %w", err)
	}
	return count, nil
}

func (r *LicenseRepository) exists(ctx context.Context, id uint) (bool, error) {
	count, err := r.countWhere(ctx, "id = ?", id)
	return count > 0, err
}

func (r *LicenseRepository) toDomainList(rows []models.LicenseModel) ([]*license.License, error) {
	out := make([]*license.License, 0, len(rows))
	for i := range rows {
		l, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func withExpiryBounds(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(constants.TableLicenses+".expiry_date >= ?", datatypes.Date(*from))
	}
	if to != nil {
		query = query.Where(constants.TableLicenses+".expiry_date <= ?", datatypes.Date(*to))
	}
	return query
}

type RenewalRepository struct {
	db     *gorm.DB
	mapper mappers.LicenseMapper
}

func NewRenewalRepository(db *gorm.DB) license.RenewalRepository {
	return &RenewalRepository{db: db, mapper: mappers.NewLicenseMapper()}
}

func (r *RenewalRepository) Record(ctx context.Context, renewal *license.Renewal) error {
	model := r.mapper.RenewalToModel(renewal)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record renewal: %w", err)
	}
	return renewal.SetID(model.ID)
}

// HistoryFor returns the ledger newest due date first.
func (r *RenewalRepository) HistoryFor(ctx context.Context, licenseID uint) ([]*license.Renewal, error) {
	var rows []models.RenewalModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("license_id = ?", licenseID).
		Order("due_date DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load renewal history: %w", err)
	}

	out := make([]*license.Renewal, 0, len(rows))
	for i := range rows {
		renewal, err := r.mapper.RenewalToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, renewal)
	}
	return out, nil
}

func (r *RenewalRepository) DeleteByLicenseID(ctx context.Context, licenseID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("license_id = ?", licenseID).Delete(&models.RenewalModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete renewals: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type LicenseEventRepository struct {
	db     *gorm.DB
	mapper mappers.LicenseMapper
}

func NewLicenseEventRepository(db *gorm.DB) license.EventRepository {
	return &LicenseEventRepository{db: db, mapper: mappers.NewLicenseMapper()}
}

func (r *LicenseEventRepository) Append(ctx context.Context, event *license.Event) error {
	model, err := r.mapper.EventToModel(event)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append license event: %w", err)
	}
	event.SetID(model.ID)
	return nil
}

// ListByLicenseID returns events oldest first.
func (r *LicenseEventRepository) ListByLicenseID(ctx context.Context, licenseID uint) ([]*license.Event, error) {
	var rows []models.LicenseEventModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("license_id = ?", licenseID).
		Order("occurred_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list license events: %w", err)
	}

	out := make([]*license.Event, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.EventToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *LicenseEventRepository) CountByTypeSince(ctx context.Context, eventType string, since time.Time) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.LicenseEventModel{}).
		Where("event_type = ? AND occurred_at >= ?", eventType, since.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count license events: %w", err)
	}
	return count, nil
}
