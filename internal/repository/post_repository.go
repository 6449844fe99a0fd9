package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yatube-dev/yatube/internal/model"
)

// PostFilter narrows a post listing. Zero value means all posts.
type PostFilter struct {
	GroupID   uint
	AuthorID  uint
	AuthorIDs []uint // feed: posts by any of these authors
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, f PostFilter, offset, limit int) ([]model.Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	// Select forces group_id to be written even when cleared to NULL.
	return r.db.WithContext(ctx).Model(post).
		Select("text", "group_id", "image", "updated_at").
		Updates(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, f PostFilter, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.filtered(ctx, f).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Count(ctx context.Context, f PostFilter) (int64, error) {
	var cnt int64
	err := r.filtered(ctx, f).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) filtered(ctx context.Context, f PostFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if f.GroupID != 0 {
		q = q.Where("group_id = ?", f.GroupID)
	}
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.AuthorIDs != nil {
		q = q.Where("author_id IN ?", f.AuthorIDs)
	}
	return q
}
