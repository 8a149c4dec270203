package service

import (
	"context"
	"errors"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByIDFn    func(context.Context, uint) (*models.Post, error)
	listFn       func(context.Context) ([]*models.Post, error)
	deleteFn     func(context.Context, uint) error
	hasLikeFn    func(context.Context, uint, uint) (bool, error)
	addLikeFn    func(context.Context, uint, uint) error
	removeLikeFn func(context.Context, uint, uint) error
	listLikesFn  func(context.Context, uint) ([]models.Like, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) HasLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.hasLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) AddLike(ctx context.Context, userID, postID uint) error {
	return s.addLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) RemoveLike(ctx context.Context, userID, postID uint) error {
	return s.removeLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:       func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		hasLikeFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		addLikeFn:    func(_ context.Context, _, _ uint) error { return nil },
		removeLikeFn: func(_ context.Context, _, _ uint) error { return nil },
		listLikesFn:  func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Test User", Avatar: "https://example.com/a.png"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func assertAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestPostService_CreatePost_EmptyText(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopUserRepo())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreatePost(context.Background(), 1, text)
		appErr := assertAppError(t, err, models.CodeValidation)
		assert.Equal(t, []string{"Text is required"}, appErr.Fields)
	}
}

func TestPostService_CreatePost_SnapshotsAuthor(t *testing.T) {
	t.Parallel()

	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 11
		created = post
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id}, nil
	}
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Ada", Avatar: "https://example.com/ada.png"}, nil
	}

	svc := NewPostService(postRepo, userRepo)
	post, err := svc.CreatePost(context.Background(), 3, "hello world")
	require.NoError(t, err)
	assert.Equal(t, uint(11), post.ID)

	require.NotNil(t, created)
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "https://example.com/ada.png", created.Avatar)
	assert.Equal(t, uint(3), created.UserID)
}

func TestPostService_DeletePost_NonAuthorForbidden(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}

	svc := NewPostService(postRepo, noopUserRepo())
	err := svc.DeletePost(context.Background(), 2, 10)
	appErr := assertAppError(t, err, models.CodeForbidden)
	assert.Equal(t, "User not authorized", appErr.Message)
}

func TestPostService_Like_OwnPostForbidden(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 5}, nil
	}

	svc := NewPostService(postRepo, noopUserRepo())
	_, err := svc.Like(context.Background(), 5, 10)
	assertAppError(t, err, models.CodeForbidden)
}

func TestPostService_Like_DuplicateConflict(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}
	postRepo.hasLikeFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }

	svc := NewPostService(postRepo, noopUserRepo())
	_, err := svc.Like(context.Background(), 2, 10)
	appErr := assertAppError(t, err, models.CodeConflict)
	assert.Equal(t, "Post already liked", appErr.Message)
}

func TestPostService_Like_ReturnsLikes(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}
	postRepo.listLikesFn = func(_ context.Context, postID uint) ([]models.Like, error) {
		return []models.Like{{ID: 1, UserID: 2, PostID: postID}}, nil
	}

	svc := NewPostService(postRepo, noopUserRepo())
	likes, err := svc.Like(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, uint(2), likes[0].UserID)
}

func TestPostService_Unlike_NotLikedConflict(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}

	svc := NewPostService(postRepo, noopUserRepo())
	_, err := svc.Unlike(context.Background(), 2, 10)
	appErr := assertAppError(t, err, models.CodeConflict)
	assert.Equal(t, "Post has not yet been liked", appErr.Message)
}

func TestPostService_Like_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post")
	}

	svc := NewPostService(postRepo, noopUserRepo())
	_, err := svc.Like(context.Background(), 2, 999)
	assertAppError(t, err, models.CodeNotFound)
}

func TestCommentService_CreateComment_EmptyText(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
	_, err := svc.CreateComment(context.Background(), 1, 2, "   ")
	appErr := assertAppError(t, err, models.CodeValidation)
	assert.Equal(t, []string{"Text is required"}, appErr.Fields)
}

func TestCommentService_CreateComment_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post")
	}

	svc := NewCommentService(noopCommentRepo(), postRepo, noopUserRepo())
	_, err := svc.CreateComment(context.Background(), 1, 999, "hi")
	assertAppError(t, err, models.CodeNotFound)
}

func TestCommentService_DeleteComment_WrongPostReadsAsNotFound(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 77, UserID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
	_, err := svc.DeleteComment(context.Background(), 1, 10, 5)
	appErr := assertAppError(t, err, models.CodeNotFound)
	assert.Equal(t, "Comment not found", appErr.Message)
}

func TestCommentService_DeleteComment_NonAuthorForbidden(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 10, UserID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
	_, err := svc.DeleteComment(context.Background(), 2, 10, 5)
	assertAppError(t, err, models.CodeForbidden)
}

func TestCommentService_DeleteComment_ReturnsRemaining(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 10, UserID: 2}, nil
	}
	commentRepo.listByPostFn = func(_ context.Context, postID uint) ([]models.Comment, error) {
		return []models.Comment{{ID: 9, PostID: postID}}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
	comments, err := svc.DeleteComment(context.Background(), 2, 10, 5)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, uint(9), comments[0].ID)
}
