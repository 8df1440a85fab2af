package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db}
}

// MembersFor returns a design's team in join order with member profiles.
func (r *TeamRepo) MembersFor(ctx context.Context, designID uuid.UUID) ([]models.DevelopmentTeamMember, error) {
	var members []models.DevelopmentTeamMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("design_id = ?", designID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

// CountFor returns how many members have joined a design's team.
func (r *TeamRepo) CountFor(ctx context.Context, designID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DevelopmentTeamMember{}).
		Where("design_id = ?", designID).
		Count(&count).Error
	return int(count), err
}

// MembershipsForUser returns every membership a user holds, with the joined
// design loaded so callers can inspect its status.
func (r *TeamRepo) MembershipsForUser(ctx context.Context, userID uuid.UUID) ([]models.DevelopmentTeamMember, error) {
	var memberships []models.DevelopmentTeamMember
	err := r.db.WithContext(ctx).
		Preload("Design").
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Find(&memberships).Error
	return memberships, err
}

// Add inserts a membership. A duplicate (design, user) pair surfaces as a
// unique constraint violation.
func (r *TeamRepo) Add(ctx context.Context, member *models.DevelopmentTeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}
