package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// ByID returns a profile by the auth provider's user id
func (r *ProfileRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new profile
func (r *ProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update saves an existing profile
func (r *ProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// SkillsFor returns a user's skills with the catalog entries loaded.
func (r *ProfileRepo) SkillsFor(ctx context.Context, userID uuid.UUID) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Find(&skills).Error
	return skills, err
}
