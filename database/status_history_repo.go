package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusHistoryRepo struct {
	db *gorm.DB
}

func NewStatusHistoryRepo(db *gorm.DB) *StatusHistoryRepo {
	return &StatusHistoryRepo{db}
}

// Append inserts an audit entry. Entries are never updated or deleted.
func (r *StatusHistoryRepo) Append(ctx context.Context, entry *models.DesignStatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ForDesign returns a design's audit trail in insertion order.
func (r *StatusHistoryRepo) ForDesign(ctx context.Context, designID uuid.UUID) ([]models.DesignStatusHistory, error) {
	var entries []models.DesignStatusHistory
	err := r.db.WithContext(ctx).
		Where("design_id = ?", designID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
