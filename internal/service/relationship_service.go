package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/pagination"
	"github.com/yatube-dev/yatube/internal/repository"
)

// RelationshipService owns follow edges and the personal feed.
type RelationshipService interface {
	Follow(ctx context.Context, userID, authorID uint) error
	Unfollow(ctx context.Context, userID, authorID uint) error
	FollowAuthor(ctx context.Context, userID uint, authorUsername string) error
	UnfollowAuthor(ctx context.Context, userID uint, authorUsername string) error
	IsFollowing(ctx context.Context, userID, authorID uint) (bool, error)
	Feed(ctx context.Context, userID uint, pageNum int) (pagination.Page, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, postRepo: postRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return ErrFollowSelf
	}
	// unique (user_id, author_id) index makes repeats a no-op
	return s.followRepo.Create(ctx, userID, authorID)
}

func (s *relationshipService) Unfollow(ctx context.Context, userID, authorID uint) error {
	return s.followRepo.Delete(ctx, userID, authorID)
}

func (s *relationshipService) FollowAuthor(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.Follow(ctx, userID, author.ID)
}

func (s *relationshipService) UnfollowAuthor(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.Unfollow(ctx, userID, author.ID)
}

func (s *relationshipService) resolveAuthor(ctx context.Context, username string) (*model.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

// Feed lists posts by followed authors, newest first. The feed is assembled
// at read time, so a fresh post shows up on the very next request.
func (s *relationshipService) Feed(ctx context.Context, userID uint, pageNum int) (pagination.Page, error) {
	authorIDs, err := s.followRepo.ListAuthorIDs(ctx, userID)
	if err != nil {
		return pagination.Page{}, err
	}
	if len(authorIDs) == 0 {
		return pagination.Page{Number: 1, Size: pagination.PageSize}, nil
	}
	return listPage(ctx, s.postRepo, repository.PostFilter{AuthorIDs: authorIDs}, pageNum)
}
