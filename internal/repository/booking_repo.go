package repository

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ItemID    int64     `gorm:"column:item_id;index"`
	BookerID  int64     `gorm:"column:booker_id;index"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		ItemID:    m.ItemID,
		BookerID:  m.BookerID,
		Start:     m.StartTime,
		End:       m.EndTime,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartTime: b.Start,
		EndTime:   b.End,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(m)
	if err := r.attachRefs(ctx, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByBooker returns the booker's bookings for one state filter, newest
// start first. The filter must already be parsed and validated.
func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("booker_id = ?", bookerID)
	return r.list(ctx, applyStateFilter(q, f, now))
}

// ListByOwner returns bookings on any item owned by ownerID, newest start
// first.
func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64, f domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.list(ctx, applyStateFilter(q, f, now))
}

func applyStateFilter(q *gorm.DB, f domain.StateFilter, now time.Time) *gorm.DB {
	switch f {
	case domain.StateCurrent:
		return q.Where("start_time < ? AND end_time > ?", now, now)
	case domain.StatePast:
		return q.Where("end_time < ?", now)
	case domain.StateFuture:
		return q.Where("start_time > ?", now)
	case domain.StateWaiting:
		return q.Where("status = ?", string(domain.BookingWaiting))
	case domain.StateRejected:
		return q.Where("status = ?", string(domain.BookingRejected))
	}
	return q
}

func (r *BookingRepository) list(ctx context.Context, q *gorm.DB) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := q.Model(&bookingModel{}).Order("start_time DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	refs := make([]*domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
		refs = append(refs, &out[len(out)-1])
	}
	if err := r.attachRefs(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// HasFinishedBooking reports whether the booker has an APPROVED booking on
// the item that ended strictly before now. Gate for comment creation.
func (r *BookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_time < ?",
			bookerID, itemID, string(domain.BookingApproved), now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// LastBookingEnd returns the end of the most recent APPROVED booking that
// already finished, or nil when the item has none.
func (r *BookingRepository) LastBookingEnd(ctx context.Context, itemID int64, now time.Time) (*time.Time, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND end_time < ?", itemID, string(domain.BookingApproved), now).
		Order("end_time DESC").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &m.EndTime, nil
}

// NextBookingStart returns the start of the nearest APPROVED booking in the
// future, or nil when the item has none.
func (r *BookingRepository) NextBookingStart(ctx context.Context, itemID int64, now time.Time) (*time.Time, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_time > ?", itemID, string(domain.BookingApproved), now).
		Order("start_time ASC").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &m.StartTime, nil
}

// attachRefs loads the referenced items and bookers in two batch lookups.
func (r *BookingRepository) attachRefs(ctx context.Context, bs []*domain.Booking) error {
	if len(bs) == 0 {
		return nil
	}

	itemIDs := make([]int64, 0, len(bs))
	userIDs := make([]int64, 0, len(bs))
	for _, b := range bs {
		itemIDs = append(itemIDs, b.ItemID)
		userIDs = append(userIDs, b.BookerID)
	}

	var items []itemModel
	if err := r.db.WithContext(ctx).Where("id IN ?", itemIDs).Find(&items).Error; err != nil {
		return err
	}
	itemsByID := make(map[int64]*domain.Item, len(items))
	for _, m := range items {
		itemsByID[m.ID] = toDomainItem(m)
	}

	var users []userModel
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return err
	}
	usersByID := make(map[int64]*domain.User, len(users))
	for _, m := range users {
		usersByID[m.ID] = toDomainUser(m)
	}

	for _, b := range bs {
		b.Item = itemsByID[b.ItemID]
		b.Booker = usersByID[b.BookerID]
	}
	return nil
}
