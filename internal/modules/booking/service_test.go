package booking

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain"
	"shareit/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByBooker(ctx context.Context, bookerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, f, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByOwner(ctx context.Context, ownerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, f, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockItemCatalog struct {
	mock.Mock
}

func (m *MockItemCatalog) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemCatalog) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(bookings *MockBookingRepository, users *MockUserDirectory, items *MockItemCatalog) *Service {
	return NewService(bookings, users, items, clock.Fixed(testNow))
}

func TestService_Create_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	booker := &domain.User{ID: 2, Name: "Bob"}
	item := &domain.Item{ID: 5, Name: "Vase", Available: true, OwnerID: 1}

	users.On("GetByID", mock.Anything, int64(2)).Return(booker, nil)
	items.On("GetByID", mock.Anything, int64(5)).Return(item, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := newTestService(bookings, users, items)
	b, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ItemID: 5,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(72 * time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingWaiting, b.Status)
	assert.Equal(t, item, b.Item)
	assert.Equal(t, booker, b.Booker)
	bookings.AssertExpectations(t)
}

func TestService_Create_OwnerCanBookOwnItem(t *testing.T) {
	// The availability flag is the only gate; self-booking is not blocked.
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	owner := &domain.User{ID: 1, Name: "Alice"}
	item := &domain.Item{ID: 5, Available: true, OwnerID: 1}

	users.On("GetByID", mock.Anything, int64(1)).Return(owner, nil)
	items.On("GetByID", mock.Anything, int64(5)).Return(item, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := newTestService(bookings, users, items)
	_, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		ItemID: 5,
		Start:  testNow.Add(time.Hour),
		End:    testNow.Add(2 * time.Hour),
	})

	assert.NoError(t, err)
}

func TestService_Create_RejectsBadTimeRanges(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"equal start and end", testNow.Add(time.Hour), testNow.Add(time.Hour)},
		{"start after end", testNow.Add(2 * time.Hour), testNow.Add(time.Hour)},
		{"start in the past", testNow.Add(-time.Hour), testNow.Add(time.Hour)},
		{"start is now", testNow, testNow.Add(time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			users := new(MockUserDirectory)
			items := new(MockItemCatalog)

			users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
			items.On("GetByID", mock.Anything, int64(5)).Return(&domain.Item{ID: 5, Available: true, OwnerID: 1}, nil)

			svc := newTestService(bookings, users, items)
			_, err := svc.Create(context.Background(), 2, CreateBookingRequest{ItemID: 5, Start: tc.start, End: tc.end})

			assert.ErrorIs(t, err, ErrInvalidTimeRange)
			bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_UnavailableItem(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	items.On("GetByID", mock.Anything, int64(5)).Return(&domain.Item{ID: 5, Available: false, OwnerID: 1}, nil)

	svc := newTestService(bookings, users, items)
	_, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ItemID: 5,
		Start:  testNow.Add(time.Hour),
		End:    testNow.Add(2 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestService_Create_UnknownBookerOrItem(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(bookings, users, items)
	_, err := svc.Create(context.Background(), 2, CreateBookingRequest{ItemID: 5})
	assert.ErrorIs(t, err, ErrNotFound)

	users.ExpectedCalls = nil
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	items.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err = svc.Create(context.Background(), 2, CreateBookingRequest{ItemID: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}

func waitingBooking() *domain.Booking {
	return &domain.Booking{
		ID:       7,
		ItemID:   5,
		BookerID: 2,
		Start:    testNow.Add(24 * time.Hour),
		End:      testNow.Add(48 * time.Hour),
		Status:   domain.BookingWaiting,
		Item:     &domain.Item{ID: 5, OwnerID: 1},
		Booker:   &domain.User{ID: 2},
	}
}

func TestService_Approve_ApproveAndReject(t *testing.T) {
	for _, approve := range []bool{true, false} {
		bookings := new(MockBookingRepository)
		users := new(MockUserDirectory)
		items := new(MockItemCatalog)

		want := domain.BookingRejected
		if approve {
			want = domain.BookingApproved
		}

		bookings.On("GetByID", mock.Anything, int64(7)).Return(waitingBooking(), nil)
		bookings.On("UpdateStatus", mock.Anything, int64(7), want).Return(nil)

		svc := newTestService(bookings, users, items)
		b, err := svc.Approve(context.Background(), 1, 7, approve)

		assert.NoError(t, err)
		assert.Equal(t, want, b.Status)
		assert.True(t, b.UpdatedAt.Equal(testNow), "decision must refresh UpdatedAt")
		bookings.AssertExpectations(t)
	}
}

func TestService_Approve_NotOwner(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	bookings.On("GetByID", mock.Anything, int64(7)).Return(waitingBooking(), nil)

	svc := newTestService(bookings, users, items)
	_, err := svc.Approve(context.Background(), 99, 7, true)

	assert.ErrorIs(t, err, ErrNotOwner)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Approve_AlreadyDecided(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingApproved, domain.BookingRejected} {
		bookings := new(MockBookingRepository)
		users := new(MockUserDirectory)
		items := new(MockItemCatalog)

		b := waitingBooking()
		b.Status = status
		bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil)

		svc := newTestService(bookings, users, items)
		_, err := svc.Approve(context.Background(), 1, 7, true)

		assert.ErrorIs(t, err, ErrAlreadyDecided)
		bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestService_GetByID_Visibility(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	bookings.On("GetByID", mock.Anything, int64(7)).Return(waitingBooking(), nil)

	svc := newTestService(bookings, users, items)

	// booker
	b, err := svc.GetByID(context.Background(), 2, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)

	// item owner
	_, err = svc.GetByID(context.Background(), 1, 7)
	assert.NoError(t, err)

	// anybody else
	_, err = svc.GetByID(context.Background(), 42, 7)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestService_ListByBooker_StateDispatch(t *testing.T) {
	cases := []struct {
		state string
		want  domain.StateFilter
	}{
		{"ALL", domain.StateAll},
		{"all", domain.StateAll},
		{"Current", domain.StateCurrent},
		{"past", domain.StatePast},
		{"FUTURE", domain.StateFuture},
		{"waiting", domain.StateWaiting},
		{"rejected", domain.StateRejected},
	}

	for _, tc := range cases {
		t.Run(tc.state, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			users := new(MockUserDirectory)
			items := new(MockItemCatalog)

			users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
			bookings.On("ListByBooker", mock.Anything, int64(2), tc.want, testNow).Return([]domain.Booking{}, nil)

			svc := newTestService(bookings, users, items)
			_, err := svc.ListByBooker(context.Background(), 2, tc.state)

			assert.NoError(t, err)
			bookings.AssertExpectations(t)
		})
	}
}

func TestService_ListByBooker_UnknownState(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)

	svc := newTestService(bookings, users, items)
	_, err := svc.ListByBooker(context.Background(), 2, "SOMEDAY")

	assert.ErrorIs(t, err, ErrUnknownState)
	bookings.AssertNotCalled(t, "ListByBooker", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListByBooker_UnknownUser(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(bookings, users, items)
	_, err := svc.ListByBooker(context.Background(), 2, "ALL")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListByOwner_NoItems(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	items.On("ListByOwner", mock.Anything, int64(3)).Return([]domain.Item{}, nil)

	svc := newTestService(bookings, users, items)
	_, err := svc.ListByOwner(context.Background(), 3, "ALL")

	assert.ErrorIs(t, err, ErrNoItems)
	bookings.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListByOwner_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	users := new(MockUserDirectory)
	items := new(MockItemCatalog)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	items.On("ListByOwner", mock.Anything, int64(1)).Return([]domain.Item{{ID: 5, OwnerID: 1}}, nil)
	bookings.On("ListByOwner", mock.Anything, int64(1), domain.StateWaiting, testNow).
		Return([]domain.Booking{*waitingBooking()}, nil)

	svc := newTestService(bookings, users, items)
	bs, err := svc.ListByOwner(context.Background(), 1, "waiting")

	assert.NoError(t, err)
	assert.Len(t, bs, 1)
}
