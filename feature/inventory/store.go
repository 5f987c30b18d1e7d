package inventory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"inventory-tracker/core/database"
	"inventory-tracker/feature/inventory/models"

	"gorm.io/gorm"
)

// Store is the persistence boundary of the inventory feature.
type Store interface {
	// FindByName returns the item whose name equals name exactly, or nil.
	// Duplicate names resolve to the lowest id.
	FindByName(ctx context.Context, name string) (*models.Item, error)
	Get(ctx context.Context, id uint) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	// Update writes the given columns and returns the refreshed item.
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Item, error)
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
	UpdateStatus(ctx context.Context, ids []uint, status string) (int64, error)
}

// GormStore implements Store over gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the inventory table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate inventory schema: %w", err)
	}
	return nil
}

// VerifySchema returns the required columns missing from the inventory table.
func VerifySchema(db *gorm.DB) ([]string, error) {
	return database.MissingColumns(db, models.Item{}.TableName(), models.RequiredColumns())
}

func (s *GormStore) FindByName(ctx context.Context, name string) (*models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).
		Where("item_name = ?", name).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, wrapErr("find by name", err)
	}
	// Case-insensitive collations may return near matches; keep exact equality.
	for i := range items {
		if items[i].ItemName == name {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (s *GormStore) Get(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, wrapErr("get", err)
	}
	return &item, nil
}

func (s *GormStore) List(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, wrapErr("list", err)
	}
	return items, nil
}

func (s *GormStore) Create(ctx context.Context, item *models.Item) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return wrapErr("create", err)
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, id uint, fields map[string]any) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}
	if err := s.db.WithContext(ctx).Model(item).Updates(fields).Error; err != nil {
		return nil, wrapErr("update", err)
	}
	return s.Get(ctx, id)
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return wrapErr("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Item{})
	if result.Error != nil {
		return 0, wrapErr("delete many", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, ids []uint, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id IN ?", ids).
		Update(models.ColumnStatus, status)
	if result.Error != nil {
		return 0, wrapErr("update status", result.Error)
	}
	return result.RowsAffected, nil
}

// wrapErr maps driver errors onto the package sentinels.
func wrapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
