package service

import (
	"context"
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/yatube-dev/yatube/internal/form"
	"github.com/yatube-dev/yatube/internal/media"
	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/pagination"
	"github.com/yatube-dev/yatube/internal/repository"
)

// ImageUpload is an optional file attached to a post submission.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// Close releases the underlying upload, typically a multipart temp file.
func (u *ImageUpload) Close() {
	if c, ok := u.Data.(io.Closer); ok {
		c.Close()
	}
}

type PostService interface {
	Index(ctx context.Context, pageNum int) (pagination.Page, error)
	GroupPage(ctx context.Context, slug string, pageNum int) (*model.Group, pagination.Page, error)
	ProfilePage(ctx context.Context, username string, pageNum int) (*model.User, pagination.Page, error)
	Detail(ctx context.Context, id uint) (*model.Post, []model.Comment, error)
	Create(ctx context.Context, authorID uint, f form.PostForm, img *ImageUpload) (*model.Post, error)
	Edit(ctx context.Context, postID, editorID uint, f form.PostForm, img *ImageUpload) (*model.Post, error)
	Delete(ctx context.Context, postID uint) error
	Groups(ctx context.Context) ([]model.Group, error)
}

type postService struct {
	db          *gorm.DB
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	store       *media.Store
}

func NewPostService(
	db *gorm.DB,
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	store *media.Store,
) PostService {
	return &postService{
		db:          db,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		store:       store,
	}
}

// listPage runs one filtered window plus its count.
func listPage(ctx context.Context, repo repository.PostRepository, f repository.PostFilter, pageNum int) (pagination.Page, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	offset, limit := pagination.Window(pageNum)
	items, err := repo.List(ctx, f, offset, limit)
	if err != nil {
		return pagination.Page{}, err
	}
	total, err := repo.Count(ctx, f)
	if err != nil {
		return pagination.Page{}, err
	}
	return pagination.Page{Number: pageNum, Size: pagination.PageSize, Total: total, Items: items}, nil
}

func (s *postService) Index(ctx context.Context, pageNum int) (pagination.Page, error) {
	return listPage(ctx, s.postRepo, repository.PostFilter{}, pageNum)
}

func (s *postService) GroupPage(ctx context.Context, slug string, pageNum int) (*model.Group, pagination.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pagination.Page{}, ErrNotFound
		}
		return nil, pagination.Page{}, err
	}
	page, err := listPage(ctx, s.postRepo, repository.PostFilter{GroupID: group.ID}, pageNum)
	return group, page, err
}

func (s *postService) ProfilePage(ctx context.Context, username string, pageNum int) (*model.User, pagination.Page, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pagination.Page{}, ErrNotFound
		}
		return nil, pagination.Page{}, err
	}
	page, err := listPage(ctx, s.postRepo, repository.PostFilter{AuthorID: author.ID}, pageNum)
	return author, page, err
}

func (s *postService) Detail(ctx context.Context, id uint) (*model.Post, []model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *postService) Create(ctx context.Context, authorID uint, f form.PostForm, img *ImageUpload) (*model.Post, error) {
	groupID, err := s.resolveGroup(ctx, f.GroupID)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		Text:      f.Text,
		AuthorID:  authorID,
		GroupID:   groupID,
		CreatedAt: time.Now(),
	}
	if img != nil {
		rel, err := s.saveImage(img)
		if err != nil {
			return nil, err
		}
		post.Image = rel
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *postService) Edit(ctx context.Context, postID, editorID uint, f form.PostForm, img *ImageUpload) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if post.AuthorID != editorID {
		return nil, ErrNotAuthor
	}
	groupID, err := s.resolveGroup(ctx, f.GroupID)
	if err != nil {
		return nil, err
	}
	post.Text = f.Text
	post.GroupID = groupID
	if img != nil {
		rel, err := s.saveImage(img)
		if err != nil {
			return nil, err
		}
		post.Image = rel
	}
	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes the post with its comments in one transaction. sqlite does
// not enforce the cascade constraint, so the child rows go first.
func (s *postService) Delete(ctx context.Context, postID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

func (s *postService) Groups(ctx context.Context) ([]model.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *postService) resolveGroup(ctx context.Context, groupID *uint) (*uint, error) {
	if groupID == nil {
		return nil, nil
	}
	group, err := s.groupRepo.GetByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &group.ID, nil
}

func (s *postService) saveImage(img *ImageUpload) (string, error) {
	if !media.AllowedImageType(img.ContentType) {
		return "", ErrInvalidImage
	}
	rel, err := s.store.SavePostImage(img.Filename, img.Data)
	if errors.Is(err, media.ErrTooLarge) {
		return "", ErrInvalidImage
	}
	return rel, err
}
