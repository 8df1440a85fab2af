package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns the skill catalog grouped by category then name.
func (r *SkillRepo) FindAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&skills).Error
	return skills, err
}
