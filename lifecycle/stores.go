package lifecycle

import (
	"context"

	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
)

// DesignStore is the persistence surface the engine needs for designs.
// Implemented by database.DesignRepo.
type DesignStore interface {
	Create(ctx context.Context, design *models.Design) error
	ByID(ctx context.Context, id uuid.UUID) (*models.Design, error)
	ByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Design, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error)
	ByStatuses(ctx context.Context, statuses []models.DesignStatus) ([]models.Design, error)
	Update(ctx context.Context, design *models.Design) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HistoryStore appends and reads the append-only status audit trail.
// Implemented by database.StatusHistoryRepo.
type HistoryStore interface {
	Append(ctx context.Context, entry *models.DesignStatusHistory) error
	ForDesign(ctx context.Context, designID uuid.UUID) ([]models.DesignStatusHistory, error)
}

// TeamStore manages development team membership rows.
// Implemented by database.TeamRepo.
type TeamStore interface {
	MembersFor(ctx context.Context, designID uuid.UUID) ([]models.DevelopmentTeamMember, error)
	CountFor(ctx context.Context, designID uuid.UUID) (int, error)
	MembershipsForUser(ctx context.Context, userID uuid.UUID) ([]models.DevelopmentTeamMember, error)
	Add(ctx context.Context, member *models.DevelopmentTeamMember) error
}

// ProfileStore reads and writes application identity records.
// Implemented by database.ProfileRepo.
type ProfileStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

// AchievementStore reads explicit badge awards.
// Implemented by database.AchievementRepo.
type AchievementStore interface {
	AwardsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error)
}
