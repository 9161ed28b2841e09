package booking

import (
	"context"
	"time"

	"shareit/internal/domain"
)

// BookingRepository defines the persistence operations the lifecycle needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error)
}

// UserDirectory resolves referenced users.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemCatalog resolves referenced items and the set an owner has listed.
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
}
