package lifecycle

import (
	"context"
	"sort"

	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
)

// Point weights and the level threshold. Points are always recomputed from
// designs and memberships; no stored value is authoritative.
const (
	pointsPerDesignPage   = 10
	pointsPerCompletedDev = 30
	pointsPerLevel        = 100
)

// Badge sources distinguish catalog awards from badges computed on read.
const (
	BadgeSourceCatalog = "catalog"
	BadgeSourceDerived = "derived"
)

// Badge is a single earned badge, either awarded from the catalog or derived
// from the user's activity.
type Badge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IconURL     *string `json:"icon_url,omitempty"`
	BadgeColor  *string `json:"badge_color,omitempty"`
	Source      string  `json:"source"`
}

// UserStats is the derived gamification view of a user.
type UserStats struct {
	DesignCount           int     `json:"design_count"`
	CompletedDevelopments int     `json:"completed_developments"`
	Points                int     `json:"points"`
	Level                 int     `json:"level"`
	PointsToNextLevel     int     `json:"points_to_next_level"`
	Badges                []Badge `json:"badges"`
}

// StatsFor recomputes points, level and badges for a user. The computation is
// a pure function of the user's designs, memberships and awards: calling it
// twice on unchanged data yields identical output.
func (s *Service) StatsFor(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	designs, err := s.designs.ByOwner(ctx, userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "designs", err)
	}

	memberships, err := s.teams.MembershipsForUser(ctx, userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "team memberships", err)
	}

	awards, err := s.achievements.AwardsForUser(ctx, userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "achievements", err)
	}

	designPoints := 0
	for _, d := range designs {
		switch d.Status {
		case models.StatusAccepted, models.StatusInDevelopment, models.StatusCompleted:
			designPoints += d.PagesCount * pointsPerDesignPage
		}
	}

	completedDevs := 0
	for _, m := range memberships {
		if m.Design != nil && m.Design.Status == models.StatusCompleted {
			completedDevs++
		}
	}

	points := designPoints + completedDevs*pointsPerCompletedDev
	level := points/pointsPerLevel + 1

	stats := &UserStats{
		DesignCount:           len(designs),
		CompletedDevelopments: completedDevs,
		Points:                points,
		Level:                 level,
		PointsToNextLevel:     pointsPerLevel - points%pointsPerLevel,
		Badges:                collectBadges(designs, memberships, awards),
	}
	return stats, nil
}

// collectBadges merges the three badge sources: explicit catalog awards,
// derived per-completion badges, and the unconditional membership badge.
// Derived badges get stable ids so recomputation is idempotent.
func collectBadges(designs []models.Design, memberships []models.DevelopmentTeamMember, awards []models.UserAchievement) []Badge {
	badges := make([]Badge, 0, len(awards)+len(designs)+len(memberships)+1)

	for _, award := range awards {
		badge := Badge{
			ID:     award.AchievementID.String(),
			Source: BadgeSourceCatalog,
		}
		if award.Achievement != nil {
			badge.Name = award.Achievement.Name
			badge.Description = award.Achievement.Description
			badge.IconURL = award.Achievement.IconURL
			badge.BadgeColor = award.Achievement.BadgeColor
		}
		badges = append(badges, badge)
	}

	for _, d := range designs {
		if d.Status != models.StatusCompleted {
			continue
		}
		badges = append(badges, Badge{
			ID:          "design-completed:" + d.ID.String(),
			Name:        "Completed Design",
			Description: "Design '" + d.Name + "' was completed",
			Source:      BadgeSourceDerived,
		})
	}

	for _, m := range memberships {
		if m.Design == nil || m.Design.Status != models.StatusCompleted {
			continue
		}
		badges = append(badges, Badge{
			ID:          "development-completed:" + m.DesignID.String(),
			Name:        "Completed Development",
			Description: "Helped develop '" + m.Design.Name + "'",
			Source:      BadgeSourceDerived,
		})
	}

	badges = append(badges, Badge{
		ID:          "new-member",
		Name:        "New Member",
		Description: "Welcome to the community",
		Source:      BadgeSourceDerived,
	})

	sort.Slice(badges, func(i, j int) bool {
		if badges[i].Source != badges[j].Source {
			return badges[i].Source < badges[j].Source
		}
		return badges[i].ID < badges[j].ID
	})
	return badges
}
