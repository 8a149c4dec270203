package server

import (
	"time"

	"devlink/internal/middleware"
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile handles POST /api/profile, creating the requester's profile
// or replacing its fields if one exists.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Status   string   `json:"status"`
		Company  string   `json:"company"`
		Website  string   `json:"website"`
		Location string   `json:"location"`
		Bio      string   `json:"bio"`
		Skills   []string `json:"skills"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	ctx := c.UserContext()
	profile, err := s.profileService.Upsert(ctx, service.UpsertProfileInput{
		UserID:   currentUserID(c),
		Status:   req.Status,
		Company:  req.Company,
		Website:  req.Website,
		Location: req.Location,
		Bio:      req.Bio,
		Skills:   req.Skills,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "profile saved", "profile_id", profile.ID)
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles handles GET /api/profile and lists all profiles.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id", "Profile")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profile, err := s.profileService.GetByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddEducation handles PUT /api/profile/education and returns the refreshed
// profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req struct {
		School       string     `json:"school"`
		Degree       string     `json:"degree"`
		FieldOfStudy string     `json:"fieldofstudy"`
		From         time.Time  `json:"from"`
		To           *time.Time `json:"to"`
		Current      bool       `json:"current"`
		Description  string     `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewFieldErrors("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), service.EducationInput{
		UserID:       currentUserID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id.
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := parseID(c, "edu_id", "Education")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profile, err := s.profileService.DeleteEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteProfile handles DELETE /api/profile, removing the requester's
// profile and education records. The account itself stays.
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := s.profileService.Delete(ctx, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "profile deleted", "user_id", currentUserID(c))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Profile removed"})
}
