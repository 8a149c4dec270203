package server

import (
	"devlink/internal/middleware"
	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	ctx := c.UserContext()
	post, err := s.postService.CreatePost(ctx, currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post created", "post_id", post.ID)
	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts handles GET /api/posts and returns the feed newest-first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the author may delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	ctx := c.UserContext()
	if err := s.postService.DeletePost(ctx, currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", postID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the post's likes.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	likes, err := s.postService.Like(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id and returns the post's likes.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	likes, err := s.postService.Unlike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}
