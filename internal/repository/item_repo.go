package repository

import (
	"context"
	"strings"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type itemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Available   bool      `gorm:"column:available"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	RequestID   *int64    `gorm:"column:request_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string { return "items" }

func toDomainItem(m itemModel) *domain.Item {
	return &domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		RequestID:   m.RequestID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toItemModel(i *domain.Item) itemModel {
	return itemModel{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItem(m), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

// Delete removes the item and the bookings and comments attached to it.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m itemModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	var ms []itemModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItems(ms), nil
}

// Search matches the text case-insensitively against name or description.
// Callers are expected to short-circuit blank text before reaching here.
func (r *ItemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var ms []itemModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItems(ms), nil
}

// ListByRequestIDs returns the items fulfilling any of the given requests,
// for annotating request board responses.
func (r *ItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return []domain.Item{}, nil
	}
	var ms []itemModel
	tx := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItems(ms), nil
}

func toDomainItems(ms []itemModel) []domain.Item {
	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out
}
