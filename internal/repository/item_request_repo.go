package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type ItemRequestRepository struct {
	db *gorm.DB
}

func NewItemRequestRepository(db *gorm.DB) *ItemRequestRepository {
	return &ItemRequestRepository{db: db}
}

type itemRequestModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Description string    `gorm:"column:description"`
	RequestorID int64     `gorm:"column:requestor_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (itemRequestModel) TableName() string { return "item_requests" }

func toDomainItemRequest(m itemRequestModel) *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          m.ID,
		Description: m.Description,
		RequestorID: m.RequestorID,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ItemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	m := itemRequestModel{
		ID:          req.ID,
		Description: req.Description,
		RequestorID: req.RequestorID,
		CreatedAt:   req.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainItemRequest(m)
	return nil
}

func (r *ItemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var m itemRequestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItemRequest(m), nil
}

// ListByRequestor returns the user's own requests, newest first.
func (r *ItemRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	var ms []itemRequestModel
	tx := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItemRequests(ms), nil
}

// ListOthers returns everyone else's requests, newest first.
func (r *ItemRequestRepository) ListOthers(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	var ms []itemRequestModel
	tx := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItemRequests(ms), nil
}

func toDomainItemRequests(ms []itemRequestModel) []domain.ItemRequest {
	out := make([]domain.ItemRequest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItemRequest(m))
	}
	return out
}
