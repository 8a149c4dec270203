// Package service implements the business rules between handlers and repositories.
package service

import (
	"context"
	"strings"

	"devlink/internal/cache"
	"devlink/internal/models"
	"devlink/internal/repository"
)

// PostService carries the feed rules: ownership on delete, the no-self-like
// rule, and like uniqueness.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost persists a new post authored by userID, snapshotting the
// author's name and avatar at creation time.
func (s *PostService) CreatePost(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldErrors("Text is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:   text,
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts returns all posts newest-first. The page is served cache-aside
// since it is the hottest read in the application.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.FeedKey, &posts, cache.FeedTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns a single post with likes and comments.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records userID's like on a post and returns the updated like list.
// Authors may not like their own posts, and at most one like per user per
// post is allowed. The pre-check races with concurrent likes; the unique
// index behind AddLike keeps the stored state consistent either way.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	liked, err := s.postRepo.HasLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewConflictError("Post already liked")
	}

	if err := s.postRepo.AddLike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// Unlike removes userID's like from a post and returns the updated like list.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	liked, err := s.postRepo.HasLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewConflictError("Post has not yet been liked")
	}

	if err := s.postRepo.RemoveLike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}
