package item

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/domain"
	"shareit/internal/pkg/clock"

	"gorm.io/gorm"
)

type Service struct {
	items    ItemRepository
	comments CommentRepository
	users    UserDirectory
	requests RequestBoard
	bookings BookingInfo
	clock    clock.Clock
}

func NewService(
	items ItemRepository,
	comments CommentRepository,
	users UserDirectory,
	requests RequestBoard,
	bookings BookingInfo,
	clk clock.Clock,
) *Service {
	return &Service{
		items:    items,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		clock:    clk,
	}
}

func (s *Service) Save(ctx context.Context, ownerID int64, req CreateItemRequest) (*domain.Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, asNotFound(err)
	}

	if req.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *req.RequestID); err != nil {
			return nil, asNotFound(err)
		}
	}

	i := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// Update applies the present fields. Only the owner may edit an item.
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*domain.Item, error) {
	i, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if i.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		i.Name = *req.Name
	}
	if req.Description != nil {
		i.Description = *req.Description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.items.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// GetByID returns the item with its comments. The last/next booking
// summary is computed only when the caller owns the item; other callers
// get nulls regardless of the booking history.
func (s *Service) GetByID(ctx context.Context, callerID, itemID int64) (*ItemDetail, error) {
	i, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err)
	}

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetail{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
		Comments:    toCommentResponses(comments),
	}

	if i.OwnerID == callerID {
		now := s.clock.Now()
		last, err := s.bookings.LastBookingEnd(ctx, itemID, now)
		if err != nil {
			return nil, err
		}
		next, err := s.bookings.NextBookingStart(ctx, itemID, now)
		if err != nil {
			return nil, err
		}
		detail.LastBooking = last
		detail.NextBooking = next
	}

	return detail, nil
}

func (s *Service) Delete(ctx context.Context, itemID int64) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		return asNotFound(err)
	}
	return nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	return s.items.ListByOwner(ctx, ownerID)
}

// Search returns items whose name or description contains the text,
// case-insensitively. Blank text returns an empty result without touching
// storage; it must never mean "everything".
func (s *Service) Search(ctx context.Context, text string) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.items.Search(ctx, strings.TrimSpace(text))
}

// SaveComment lets a renter review an item, but only after an APPROVED
// booking of theirs on it has ended.
func (s *Service) SaveComment(ctx context.Context, userID, itemID int64, req CreateCommentRequest) (*domain.Comment, error) {
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, asNotFound(err)
	}

	now := s.clock.Now()
	ok, err := s.bookings.HasFinishedBooking(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotRented
	}

	c := &domain.Comment{
		Text:      req.Text,
		ItemID:    itemID,
		AuthorID:  userID,
		CreatedAt: now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Author = author
	return c, nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
