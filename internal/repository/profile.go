package repository

import (
	"context"
	"errors"

	"devlink/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and education records.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
	AddEducation(ctx context.Context, education *models.Education) error
	GetEducation(ctx context.Context, id uint) (*models.Education, error)
	DeleteEducation(ctx context.Context, id uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withProfileAssociations preloads the owning user and education records
// newest-first.
func withProfileAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"from\" DESC, id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := withProfileAssociations(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile")
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}
	err := withProfileAssociations(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profile.ID).
		Delete(&models.Education{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Hard delete: a soft-deleted row would still hold the user_id unique
	// index and block re-creating the profile.
	if err := r.db.WithContext(ctx).Unscoped().Delete(&models.Profile{}, profile.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, education *models.Education) error {
	if err := r.db.WithContext(ctx).Create(education).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) GetEducation(ctx context.Context, id uint) (*models.Education, error) {
	var education models.Education
	if err := r.db.WithContext(ctx).First(&education, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Education")
		}
		return nil, models.NewInternalError(err)
	}
	return &education, nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Education{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
