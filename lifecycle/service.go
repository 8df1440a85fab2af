// Package lifecycle implements the design lifecycle engine: submission
// validation, admin status transitions, team joining rules, and the derived
// points/level/badge computation.
package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service orchestrates the design workflow against the persistence stores.
type Service struct {
	designs      DesignStore
	history      HistoryStore
	teams        TeamStore
	profiles     ProfileStore
	achievements AchievementStore
	logger       zerolog.Logger
	now          func() time.Time
}

// NewService wires a lifecycle engine over the given stores.
func NewService(designs DesignStore, history HistoryStore, teams TeamStore, profiles ProfileStore, achievements AchievementStore) *Service {
	logger := log.With().Str("component", "lifecycle").Logger()
	return &Service{
		designs:      designs,
		history:      history,
		teams:        teams,
		profiles:     profiles,
		achievements: achievements,
		logger:       logger,
		now:          time.Now,
	}
}

// ProfileFor returns the caller's profile, provisioning it on first access.
func (s *Service) ProfileFor(ctx context.Context, ident *auth.Identity) (*models.Profile, error) {
	if ident == nil {
		return nil, errs.NewAuthError()
	}
	return s.ensureProfile(ctx, ident)
}

// ensureProfile returns the caller's profile, creating one with default role
// student if none exists yet. A concurrent duplicate create is tolerated: the
// unique violation is swallowed and the existing row re-read.
func (s *Service) ensureProfile(ctx context.Context, ident *auth.Identity) (*models.Profile, error) {
	profile, err := s.profiles.ByID(ctx, ident.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	now := s.now()
	created := &models.Profile{
		ID:        ident.ID,
		Email:     ident.Email,
		Role:      models.RoleStudent,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ident.FirstName != "" {
		created.FirstName = &ident.FirstName
	}
	if ident.LastName != "" {
		created.LastName = &ident.LastName
	}
	if ident.Username != "" {
		created.Username = &ident.Username
	}

	if err := s.profiles.Create(ctx, created); err != nil {
		if errs.IsUniqueViolation(err) {
			// Another request provisioned it first.
			existing, readErr := s.profiles.ByID(ctx, ident.ID)
			if readErr != nil {
				return nil, errs.NewDatabaseError("find", "profile", readErr)
			}
			return existing, nil
		}
		return nil, errs.NewDatabaseError("create", "profile", err)
	}

	s.logger.Info().Str("userID", ident.ID.String()).Msg("auto-provisioned profile")
	return created, nil
}
