package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"items-api/models"
)

// LocalStore persists items in an embedded SQLite database. It needs no
// external configuration and serves as the fallback backend.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore opens (or creates) the database at path and migrates the
// items table.
func NewLocalStore(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, storageErr("opening local database", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		return nil, storageErr("migrating local database", err)
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Create(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	item := patch.NewItem()
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, storageErr("creating item", err)
	}
	return &item, nil
}

func (s *LocalStore) GetAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, storageErr("fetching items", err)
	}
	return items, nil
}

func (s *LocalStore) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("fetching item", err)
	}
	return &item, nil
}

func (s *LocalStore) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("updating item", err)
	}

	patch.Apply(&item)
	item.UpdatedAt = time.Now().UTC()
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, storageErr("updating item", err)
	}
	return &item, nil
}

func (s *LocalStore) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return false, storageErr("deleting item", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *LocalStore) Search(ctx context.Context, term string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var items []models.Item
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, storageErr("searching items", err)
	}
	return items, nil
}
