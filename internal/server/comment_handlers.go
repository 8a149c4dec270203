package server

import (
	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/comment/:id and returns the post's
// updated comment list.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	comments, err := s.commentService.CreateComment(c.UserContext(), currentUserID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// DeleteComment handles DELETE /api/posts/:post_id/:comment_id and returns
// the post's remaining comments.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	commentID, err := parseID(c, "comment_id", "Comment")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comments, err := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}
