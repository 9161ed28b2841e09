package booking

import (
	"context"
	"errors"

	"shareit/internal/domain"
	"shareit/internal/pkg/clock"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	users    UserDirectory
	items    ItemCatalog
	clock    clock.Clock
}

func NewService(bookings BookingRepository, users UserDirectory, items ItemCatalog, clk clock.Clock) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		items:    items,
		clock:    clk,
	}
}

// Create validates and persists a new WAITING booking. The availability
// flag on the item is the only gate against double-booking: there is no
// overlap check against other bookings on the same item, and an owner is
// not prevented from booking their own item.
func (s *Service) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if !item.Available {
		return nil, ErrItemUnavailable
	}

	now := s.clock.Now()
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}
	if !req.Start.After(now) || !req.End.After(now) {
		return nil, ErrInvalidTimeRange
	}

	b := &domain.Booking{
		ItemID:   req.ItemID,
		BookerID: bookerID,
		Start:    req.Start,
		End:      req.End,
		Status:   domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	b.Item = item
	b.Booker = booker
	return b, nil
}

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the item's
// owner may decide, and only once.
func (s *Service) Approve(ctx context.Context, ownerID, bookingID int64, approve bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if b.Item == nil || b.Item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	if b.Status != domain.BookingWaiting {
		return nil, ErrAlreadyDecided
	}

	status := domain.BookingRejected
	if approve {
		status = domain.BookingApproved
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	b.Status = status
	b.UpdatedAt = s.clock.Now()
	return b, nil
}

// GetByID returns a booking to its booker or to the item's owner.
func (s *Service) GetByID(ctx context.Context, callerID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !canView(callerID, b) {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

// canView is the single authorization predicate for booking reads.
func canView(callerID int64, b *domain.Booking) bool {
	if b.BookerID == callerID {
		return true
	}
	return b.Item != nil && b.Item.OwnerID == callerID
}

// ListByBooker returns the user's bookings for a state filter, sorted by
// start descending.
func (s *Service) ListByBooker(ctx context.Context, userID int64, state string) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err)
	}

	f, ok := domain.ParseStateFilter(state)
	if !ok {
		return nil, ErrUnknownState
	}
	return s.bookings.ListByBooker(ctx, userID, f, s.clock.Now())
}

// ListByOwner returns bookings on the owner's items for a state filter. An
// owner with no items is a validation failure, not an empty list.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, state string) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, asNotFound(err)
	}

	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	f, ok := domain.ParseStateFilter(state)
	if !ok {
		return nil, ErrUnknownState
	}
	return s.bookings.ListByOwner(ctx, ownerID, f, s.clock.Now())
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
