package lifecycle

import (
	"context"
	"errors"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinTeam claims a slot on a design's development team. Capacity is one slot
// per page. A user may hold at most one membership on an in-development
// design at a time.
//
// The capacity check is check-then-act: two requests racing for the last slot
// can both pass it. The unique (design_id, user_id) index closes the
// duplicate-join race; the last-slot race is accepted at this traffic level.
func (s *Service) JoinTeam(ctx context.Context, ident *auth.Identity, designID uuid.UUID) (*models.DevelopmentTeamMember, error) {
	if ident == nil {
		return nil, errs.NewAuthError()
	}

	design, err := s.designs.ByID(ctx, designID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("design")
		}
		return nil, errs.NewDatabaseError("find", "design", err)
	}
	if design.Status != models.StatusAccepted && design.Status != models.StatusInDevelopment {
		// Designs outside the joinable statuses are invisible to this
		// operation.
		return nil, errs.NewNotFound("design")
	}

	joined, err := s.teams.CountFor(ctx, designID)
	if err != nil {
		if errs.IsUndefinedTable(err) {
			joined = 0
		} else {
			return nil, errs.NewDatabaseError("count", "team members", err)
		}
	}
	if joined >= design.PagesCount {
		return nil, errs.NewCapacityError(design.PagesCount)
	}

	memberships, err := s.teams.MembershipsForUser(ctx, ident.ID)
	if err != nil && !errs.IsUndefinedTable(err) {
		return nil, errs.NewDatabaseError("find", "team memberships", err)
	}
	for _, m := range memberships {
		if m.DesignID == designID {
			return nil, errs.NewAlreadyJoinedError()
		}
	}
	for _, m := range memberships {
		if m.Design != nil && m.Design.Status == models.StatusInDevelopment {
			return nil, errs.NewPolicyError("You may only join one ongoing project at a time")
		}
	}

	if _, err := s.ensureProfile(ctx, ident); err != nil {
		return nil, err
	}

	member := &models.DevelopmentTeamMember{
		DesignID: designID,
		UserID:   ident.ID,
		Role:     models.DefaultTeamRole,
		JoinedAt: s.now(),
	}
	if err := s.teams.Add(ctx, member); err != nil {
		if errs.IsUniqueViolation(err) {
			return nil, errs.NewAlreadyJoinedError()
		}
		return nil, errs.NewDatabaseError("create", "team membership", err)
	}

	s.logger.Info().
		Str("designID", designID.String()).
		Str("userID", ident.ID.String()).
		Msg("joined development team")
	return member, nil
}

// TeamFor lists a design's team members. When the membership table has not
// been provisioned yet the read degrades to an empty team instead of failing;
// this is deliberate and applies to this read only.
func (s *Service) TeamFor(ctx context.Context, designID uuid.UUID) ([]models.DevelopmentTeamMember, error) {
	members, err := s.teams.MembersFor(ctx, designID)
	if err != nil {
		if errs.IsUndefinedTable(err) {
			s.logger.Warn().
				Str("designID", designID.String()).
				Msg("team membership table missing, returning empty team")
			return []models.DevelopmentTeamMember{}, nil
		}
		return nil, errs.NewDatabaseError("find", "team members", err)
	}
	if members == nil {
		members = []models.DevelopmentTeamMember{}
	}
	return members, nil
}
