package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db}
}

// FindAll returns the badge catalog
func (r *AchievementRepo) FindAll(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.WithContext(ctx).Order("name ASC").Find(&achievements).Error
	return achievements, err
}

// AwardsForUser returns a user's explicit awards with catalog entries loaded.
func (r *AchievementRepo) AwardsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error) {
	var awards []models.UserAchievement
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Find(&awards).Error
	return awards, err
}

// Award grants a catalog achievement to a user.
func (r *AchievementRepo) Award(ctx context.Context, award *models.UserAchievement) error {
	return r.db.WithContext(ctx).Create(award).Error
}
