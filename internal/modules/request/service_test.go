package request

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain"
	"shareit/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockItemRequestRepository struct{ mock.Mock }

func (m *MockItemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil {
		req.ID = 31
	}
	return args.Error(0)
}

func (m *MockItemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *MockItemRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *MockItemRequestRepository) ListOthers(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockItemFinder struct{ mock.Mock }

func (m *MockItemFinder) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]domain.Item), args.Error(1)
}

var requestTestNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newRequestService() (*Service, *MockItemRequestRepository, *MockUserDirectory, *MockItemFinder) {
	requests := new(MockItemRequestRepository)
	users := new(MockUserDirectory)
	items := new(MockItemFinder)
	svc := NewService(requests, users, items, clock.Fixed(requestTestNow))
	return svc, requests, users, items
}

func int64Ptr(v int64) *int64 { return &v }

func TestRequestService_Save(t *testing.T) {
	svc, requests, users, _ := newRequestService()
	ctx := context.Background()

	users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Name: "Bob"}, nil)
	requests.On("Create", ctx, mock.AnythingOfType("*domain.ItemRequest")).Return(nil)

	got, err := svc.Save(ctx, 2, CreateRequest{Description: "need a drill"})
	require.NoError(t, err)
	assert.Equal(t, int64(31), got.ID)
	assert.Equal(t, requestTestNow, got.CreatedAt)
	require.NotNil(t, got.Requestor)
	assert.Equal(t, "Bob", got.Requestor.Name)
	assert.Empty(t, got.Items)
}

func TestRequestService_Save_UnknownUser(t *testing.T) {
	svc, requests, users, _ := newRequestService()
	ctx := context.Background()

	users.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Save(ctx, 99, CreateRequest{Description: "need a drill"})
	assert.ErrorIs(t, err, ErrNotFound)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestService_ListOwn_AnnotatesFulfillingItems(t *testing.T) {
	svc, requests, _, items := newRequestService()
	ctx := context.Background()

	requests.On("ListByRequestor", ctx, int64(2)).Return([]domain.ItemRequest{
		{ID: 31, Description: "need a drill", RequestorID: 2},
		{ID: 30, Description: "need a tent", RequestorID: 2},
	}, nil)
	items.On("ListByRequestIDs", ctx, []int64{31, 30}).Return([]domain.Item{
		{ID: 5, Name: "Drill", OwnerID: 1, RequestID: int64Ptr(31)},
		{ID: 6, Name: "Hammer drill", OwnerID: 3, RequestID: int64Ptr(31)},
	}, nil)

	got, err := svc.ListOwn(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Len(t, got[0].Items, 2)
	assert.Equal(t, "Drill", got[0].Items[0].Name)
	assert.Equal(t, "Hammer drill", got[0].Items[1].Name)
	assert.Empty(t, got[1].Items)
}

func TestRequestService_ListOthers(t *testing.T) {
	svc, requests, _, items := newRequestService()
	ctx := context.Background()

	requests.On("ListOthers", ctx, int64(2)).Return([]domain.ItemRequest{
		{ID: 40, Description: "projector for a weekend", RequestorID: 7},
	}, nil)
	items.On("ListByRequestIDs", ctx, []int64{40}).Return([]domain.Item{}, nil)

	got, err := svc.ListOthers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].RequestorID)
}

func TestRequestService_GetByID(t *testing.T) {
	svc, requests, _, items := newRequestService()
	ctx := context.Background()

	requests.On("GetByID", ctx, int64(31)).Return(&domain.ItemRequest{
		ID: 31, Description: "need a drill", RequestorID: 2,
	}, nil)
	items.On("ListByRequestIDs", ctx, []int64{31}).Return([]domain.Item{
		{ID: 5, Name: "Drill", OwnerID: 1, RequestID: int64Ptr(31)},
	}, nil)

	got, err := svc.GetByID(ctx, 31)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(5), got.Items[0].ID)
}

func TestRequestService_GetByID_Unknown(t *testing.T) {
	svc, requests, _, _ := newRequestService()
	ctx := context.Background()

	requests.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
