package item

import (
	"context"
	"time"

	"shareit/internal/domain"
)

// ItemRepository defines the persistence operations for items.
type ItemRepository interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	Search(ctx context.Context, text string) ([]domain.Item, error)
}

// CommentRepository stores and lists post-rental comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

// UserDirectory resolves referenced users.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequestBoard resolves the item request a new listing claims to fulfill.
type RequestBoard interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
}

// BookingInfo is the slice of the booking lifecycle the catalog needs:
// comment eligibility and the owner's last/next booking summary.
type BookingInfo interface {
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	LastBookingEnd(ctx context.Context, itemID int64, now time.Time) (*time.Time, error)
	NextBookingStart(ctx context.Context, itemID int64, now time.Time) (*time.Time, error)
}
