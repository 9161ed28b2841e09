package request

import (
	"context"
	"errors"

	"shareit/internal/domain"
	"shareit/internal/pkg/clock"

	"gorm.io/gorm"
)

type Service struct {
	requests ItemRequestRepository
	users    UserDirectory
	items    ItemFinder
	clock    clock.Clock
}

func NewService(requests ItemRequestRepository, users UserDirectory, items ItemFinder, clk clock.Clock) *Service {
	return &Service{
		requests: requests,
		users:    users,
		items:    items,
		clock:    clk,
	}
}

// Save stamps the creation time server-side; the client never supplies it.
func (s *Service) Save(ctx context.Context, userID int64, req CreateRequest) (*RequestResponse, error) {
	requestor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err)
	}

	r := &domain.ItemRequest{
		Description: req.Description,
		RequestorID: userID,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	r.Requestor = requestor
	resp := toResponse(r, nil)
	return &resp, nil
}

// ListOwn returns the user's requests, newest first, each annotated with
// the items that fulfill it.
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]RequestResponse, error) {
	rs, err := s.requests.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, rs)
}

// ListOthers returns everyone else's requests, newest first, annotated.
func (s *Service) ListOthers(ctx context.Context, userID int64) ([]RequestResponse, error) {
	rs, err := s.requests.ListOthers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, rs)
}

func (s *Service) GetByID(ctx context.Context, requestID int64) (*RequestResponse, error) {
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, asNotFound(err)
	}

	out, err := s.annotate(ctx, []domain.ItemRequest{*r})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// annotate attaches fulfilling items with a single reverse-reference
// lookup across all requests.
func (s *Service) annotate(ctx context.Context, rs []domain.ItemRequest) ([]RequestResponse, error) {
	ids := make([]int64, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}

	items, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]domain.Item)
	for _, i := range items {
		if i.RequestID == nil {
			continue
		}
		byRequest[*i.RequestID] = append(byRequest[*i.RequestID], i)
	}

	out := make([]RequestResponse, 0, len(rs))
	for i := range rs {
		out = append(out, toResponse(&rs[i], byRequest[rs[i].ID]))
	}
	return out, nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
