package request

import (
	"context"

	"shareit/internal/domain"
)

// ItemRequestRepository defines the persistence operations for requests.
type ItemRequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
}

// UserDirectory resolves referenced users.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemFinder locates the items fulfilling a set of requests.
type ItemFinder interface {
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}
