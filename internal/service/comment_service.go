package service

import (
	"context"
	"strings"

	"devlink/internal/models"
	"devlink/internal/repository"
)

// CommentService carries the comment rules: text validation and
// comment-author-only deletion.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment appends a comment to a post and returns the post's updated
// comment list, newest-first.
func (s *CommentService) CreateComment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldErrors("Text is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: user.ID,
		PostID: postID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment from a post. Only the comment's author may
// remove it; a comment id that exists under another post reads as not found.
func (s *CommentService) DeleteComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment")
	}
	if comment.UserID != userID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}
