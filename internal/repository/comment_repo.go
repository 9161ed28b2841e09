package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Text      string    `gorm:"column:text"`
	ItemID    int64     `gorm:"column:item_id;index"`
	AuthorID  int64     `gorm:"column:author_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string { return "comments" }

func toDomainComment(m commentModel) *domain.Comment {
	return &domain.Comment{
		ID:        m.ID,
		Text:      m.Text,
		ItemID:    m.ItemID,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		ID:        c.ID,
		Text:      c.Text,
		ItemID:    c.ItemID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainComment(m)
	return nil
}

// ListByItem returns the item's comments with their authors attached.
func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	var ms []commentModel
	tx := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	authorIDs := make([]int64, 0, len(ms))
	for _, m := range ms {
		authorIDs = append(authorIDs, m.AuthorID)
	}
	authors := make(map[int64]*domain.User)
	if len(authorIDs) > 0 {
		var us []userModel
		if err := r.db.WithContext(ctx).Where("id IN ?", authorIDs).Find(&us).Error; err != nil {
			return nil, err
		}
		for _, u := range us {
			authors[u.ID] = toDomainUser(u)
		}
	}

	out := make([]domain.Comment, 0, len(ms))
	for _, m := range ms {
		c := toDomainComment(m)
		c.Author = authors[m.AuthorID]
		out = append(out, *c)
	}
	return out, nil
}
