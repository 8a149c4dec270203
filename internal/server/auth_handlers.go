package server

import (
	"strings"

	"devlink/internal/gravatar"
	"devlink/internal/middleware"
	"devlink/internal/models"
	"devlink/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/users. On success it responds with a signed
// token so the client is logged in immediately after signing up.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var msgs []string
	if err := validation.ValidateName(req.Name); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(msgs...))
	}

	ctx := c.UserContext()

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, models.NewFieldErrors("User already exists"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: string(hash),
		Avatar:   gravatar.URL(req.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return models.RespondWithError(c, err)
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": signed})
}

// Login handles POST /api/auth. A wrong email and a wrong password produce
// the same response, so the endpoint does not reveal which accounts exist.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var msgs []string
	if err := validation.ValidateEmail(req.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(msgs...))
	}

	ctx := c.UserContext()

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid credentials"))
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": signed})
}

// GetCurrentUser handles GET /api/auth and returns the authenticated user.
// The password hash never serializes; the model excludes it from JSON.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
