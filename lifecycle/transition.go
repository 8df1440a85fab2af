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

// Action is an admin-operated status transition.
type Action string

const (
	ActionAccept           Action = "accept"
	ActionReject           Action = "reject"
	ActionStartDevelopment Action = "start_development"
	ActionComplete         Action = "complete"
)

// transitions is the single-direction state machine. Each action is legal
// from exactly one source status.
var transitions = map[Action]struct {
	from models.DesignStatus
	to   models.DesignStatus
}{
	ActionAccept:           {from: models.StatusPending, to: models.StatusAccepted},
	ActionReject:           {from: models.StatusPending, to: models.StatusRejected},
	ActionStartDevelopment: {from: models.StatusAccepted, to: models.StatusInDevelopment},
	ActionComplete:         {from: models.StatusInDevelopment, to: models.StatusCompleted},
}

// ParseAction returns the Action named by s, or an error for unknown names.
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if _, ok := transitions[action]; !ok {
		return "", errs.NewValidationError("action", "unknown action '"+s+"'")
	}
	return action, nil
}

// Transition moves a design along the state machine. Only admins and mentors
// may call it. On success the design row carries the new status, the matching
// timestamp and the latest note, and one history entry is appended.
func (s *Service) Transition(ctx context.Context, ident *auth.Identity, designID uuid.UUID, action Action, notes *string) (*models.Design, error) {
	if ident == nil {
		return nil, errs.NewAuthError()
	}

	profile, err := s.profiles.ByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewPermissionError("admin or mentor")
		}
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if !profile.Role.CanManageDesigns() {
		return nil, errs.NewPermissionError("admin or mentor")
	}

	edge, ok := transitions[action]
	if !ok {
		return nil, errs.NewValidationError("action", "unknown action '"+string(action)+"'")
	}

	design, err := s.designs.ByID(ctx, designID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("design")
		}
		return nil, errs.NewDatabaseError("find", "design", err)
	}

	if design.Status != edge.from {
		return nil, errs.NewInvalidTransitionError(string(design.Status), string(action))
	}

	now := s.now()
	design.Status = edge.to
	design.UpdatedAt = now
	if notes != nil {
		design.AdminNotes = notes
	}
	switch edge.to {
	case models.StatusAccepted:
		design.AcceptedAt = &now
	case models.StatusInDevelopment:
		design.DevelopmentStartedAt = &now
	case models.StatusCompleted:
		design.CompletedAt = &now
	}

	if err := s.designs.Update(ctx, design); err != nil {
		return nil, errs.NewDatabaseError("update", "design", err)
	}

	entry := &models.DesignStatusHistory{
		DesignID:  design.ID,
		Status:    edge.to,
		ChangedBy: &ident.ID,
		Notes:     notes,
		CreatedAt: now,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		// The status change already landed; a missing audit row is an
		// infrastructure problem the caller has to hear about.
		return nil, errs.NewDatabaseError("append", "status history", err)
	}

	s.logger.Info().
		Str("designID", design.ID.String()).
		Str("action", string(action)).
		Str("from", string(edge.from)).
		Str("to", string(edge.to)).
		Str("changedBy", ident.ID.String()).
		Msg("design status changed")
	return design, nil
}

// DevelopmentStats summarizes how many designs sit in each development-facing
// status.
type DevelopmentStats struct {
	Accepted      int `json:"accepted"`
	InDevelopment int `json:"in_development"`
	Completed     int `json:"completed"`
	Total         int `json:"total"`
}

// StatsForDevelopment counts accepted, in-development and completed designs.
func (s *Service) StatsForDevelopment(ctx context.Context) (*DevelopmentStats, error) {
	designs, err := s.designs.ByStatuses(ctx, []models.DesignStatus{
		models.StatusAccepted, models.StatusInDevelopment, models.StatusCompleted,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "designs", err)
	}

	stats := &DevelopmentStats{Total: len(designs)}
	for _, d := range designs {
		switch d.Status {
		case models.StatusAccepted:
			stats.Accepted++
		case models.StatusInDevelopment:
			stats.InDevelopment++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}
