package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devlink/internal/models"
	"devlink/internal/repository"
)

// ProfileService manages professional profiles and their education records.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// UpsertProfileInput is the payload for creating or updating a profile.
type UpsertProfileInput struct {
	UserID   uint
	Status   string
	Company  string
	Website  string
	Location string
	Bio      string
	Skills   []string
}

// EducationInput is the payload for adding an education record.
type EducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// GetByUser returns the profile for the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// List returns all profiles with their user info and education records.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the requester's profile or updates it if one already exists.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.Status) == "" {
		msgs = append(msgs, "Status is required")
	}
	skills := make([]string, 0, len(in.Skills))
	for _, skill := range in.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewFieldErrors(msgs...)
	}

	// The user record anchors the profile; a vanished user is a 404.
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Status = in.Status
	profile.Company = in.Company
	profile.Website = in.Website
	profile.Location = in.Location
	profile.Bio = in.Bio
	profile.Skills = skills
	// Save carries preloaded associations; drop them so GORM does not try to
	// upsert user or education rows alongside the profile.
	profile.User = models.User{}
	profile.Education = nil

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// AddEducation appends an education record to the requester's profile and
// returns the refreshed profile.
func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.School) == "" {
		msgs = append(msgs, "School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		msgs = append(msgs, "Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		msgs = append(msgs, "Field of study is required")
	}
	if in.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewFieldErrors(msgs...)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	education := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, education); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteEducation removes an education record from the requester's own
// profile. Records on other profiles read as not found.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, educationID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	education, err := s.profileRepo.GetEducation(ctx, educationID)
	if err != nil {
		return nil, err
	}
	if education.ProfileID != profile.ID {
		return nil, models.NewNotFoundError("Education")
	}

	if err := s.profileRepo.DeleteEducation(ctx, educationID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// Delete removes the requester's profile and its education records. The user
// account itself is untouched.
func (s *ProfileService) Delete(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteByUserID(ctx, userID)
}
