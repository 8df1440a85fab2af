package database

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DesignRepo struct {
	db *gorm.DB
}

func NewDesignRepo(db *gorm.DB) *DesignRepo {
	return &DesignRepo{db}
}

// Create inserts a new design into the database
func (r *DesignRepo) Create(ctx context.Context, design *models.Design) error {
	return r.db.WithContext(ctx).Create(design).Error
}

// ByID returns a design by its id
func (r *DesignRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	var design models.Design
	err := r.db.WithContext(ctx).First(&design, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &design, nil
}

// ByIDForOwner returns a design only when ownerID owns it. Rows filtered out
// by ownership look identical to absent rows.
func (r *DesignRepo) ByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Design, error) {
	var design models.Design
	err := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&design, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &design, nil
}

// ByOwner returns all designs submitted by ownerID, newest first, with their
// status history.
func (r *DesignRepo) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error) {
	var designs []models.Design
	err := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&designs).Error
	return designs, err
}

// ByStatuses returns designs whose status is in statuses, newest first.
func (r *DesignRepo) ByStatuses(ctx context.Context, statuses []models.DesignStatus) ([]models.Design, error) {
	var designs []models.Design
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&designs).Error
	return designs, err
}

// Update saves an existing design
func (r *DesignRepo) Update(ctx context.Context, design *models.Design) error {
	return r.db.WithContext(ctx).Save(design).Error
}

// Delete removes a design by id
func (r *DesignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Design{}, "id = ?", id).Error
}
