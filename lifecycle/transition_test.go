package lifecycle

import (
	"context"
	"testing"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
)

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"accept", "reject", "start_development", "complete"} {
		if _, err := ParseAction(valid); err != nil {
			t.Fatalf("ParseAction(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseAction("approve"); !errs.IsValidation(err) {
		t.Fatalf("expected validation error for unknown action, got %v", err)
	}
}

func TestTransitionMatrix(t *testing.T) {
	tests := []struct {
		name    string
		from    models.DesignStatus
		action  Action
		wantTo  models.DesignStatus
		wantErr bool
	}{
		{"accept from pending", models.StatusPending, ActionAccept, models.StatusAccepted, false},
		{"reject from pending", models.StatusPending, ActionReject, models.StatusRejected, false},
		{"start development from accepted", models.StatusAccepted, ActionStartDevelopment, models.StatusInDevelopment, false},
		{"complete from in development", models.StatusInDevelopment, ActionComplete, models.StatusCompleted, false},
		{"complete directly from pending", models.StatusPending, ActionComplete, "", true},
		{"accept from accepted", models.StatusAccepted, ActionAccept, "", true},
		{"start development from pending", models.StatusPending, ActionStartDevelopment, "", true},
		{"accept from rejected terminal", models.StatusRejected, ActionAccept, "", true},
		{"start development from completed terminal", models.StatusCompleted, ActionStartDevelopment, "", true},
		{"reject from completed terminal", models.StatusCompleted, ActionReject, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			adminID := uuid.New()
			env.profiles.profiles[adminID] = adminProfile(adminID)
			admin := &auth.Identity{ID: adminID, Email: "admin@example.org"}

			design := &models.Design{UserID: uuid.New(), Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: tt.from}
			env.designs = newStubDesignStore(design)
			env.svc.designs = env.designs

			updated, err := env.svc.Transition(context.Background(), admin, design.ID, tt.action, nil)
			if tt.wantErr {
				if !errs.IsInvalidTransition(err) {
					t.Fatalf("expected invalid transition error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transition returned error: %v", err)
			}
			if updated.Status != tt.wantTo {
				t.Fatalf("expected status %s, got %s", tt.wantTo, updated.Status)
			}
		})
	}
}

func TestTransitionRequiresManagingRole(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		wantErr bool
	}{
		{"admin allowed", models.RoleAdmin, false},
		{"mentor allowed", models.RoleMentor, false},
		{"student forbidden", models.RoleStudent, true},
		{"volunteer forbidden", models.RoleVolunteer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			callerID := uuid.New()
			env.profiles.profiles[callerID] = &models.Profile{ID: callerID, Email: "caller@example.org", Role: tt.role}
			caller := &auth.Identity{ID: callerID, Email: "caller@example.org"}

			design := &models.Design{UserID: uuid.New(), Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
			env.designs = newStubDesignStore(design)
			env.svc.designs = env.designs

			_, err := env.svc.Transition(context.Background(), caller, design.ID, ActionAccept, nil)
			if tt.wantErr {
				if !errs.IsInsufficientRole(err) {
					t.Fatalf("expected permission error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transition returned error: %v", err)
			}
		})
	}
}

func TestTransitionWithoutProfileIsForbidden(t *testing.T) {
	env := newTestEnv()
	caller := testIdentity()

	design := &models.Design{UserID: uuid.New(), Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
	env.designs = newStubDesignStore(design)
	env.svc.designs = env.designs

	if _, err := env.svc.Transition(context.Background(), caller, design.ID, ActionAccept, nil); !errs.IsInsufficientRole(err) {
		t.Fatalf("expected permission error for caller without profile, got %v", err)
	}
}

func TestTransitionAppendsHistoryAndTimestamps(t *testing.T) {
	env := newTestEnv()
	adminID := uuid.New()
	env.profiles.profiles[adminID] = adminProfile(adminID)
	admin := &auth.Identity{ID: adminID, Email: "admin@example.org"}

	design := &models.Design{UserID: uuid.New(), Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
	env.designs = newStubDesignStore(design)
	env.svc.designs = env.designs

	notes := "looks good"
	updated, err := env.svc.Transition(context.Background(), admin, design.ID, ActionAccept, &notes)
	if err != nil {
		t.Fatalf("Transition returned error: %v", err)
	}

	if updated.AcceptedAt == nil || !updated.AcceptedAt.Equal(env.now) {
		t.Fatalf("expected accepted_at %v, got %v", env.now, updated.AcceptedAt)
	}
	if updated.AdminNotes == nil || *updated.AdminNotes != notes {
		t.Fatalf("expected admin notes %q, got %v", notes, updated.AdminNotes)
	}

	history, _ := env.history.ForDesign(context.Background(), design.ID)
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.Status != models.StatusAccepted {
		t.Fatalf("expected history status accepted, got %s", entry.Status)
	}
	if entry.ChangedBy == nil || *entry.ChangedBy != adminID {
		t.Fatalf("expected actor %s, got %v", adminID, entry.ChangedBy)
	}
	if entry.Notes == nil || *entry.Notes != notes {
		t.Fatalf("expected history notes %q, got %v", notes, entry.Notes)
	}
}

// The guard must prevent re-running a transition, so a status can never
// appear twice in the audit trail through this path.
func TestTransitionGuardPreventsRepeat(t *testing.T) {
	env := newTestEnv()
	adminID := uuid.New()
	env.profiles.profiles[adminID] = adminProfile(adminID)
	admin := &auth.Identity{ID: adminID, Email: "admin@example.org"}

	design := &models.Design{UserID: uuid.New(), Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
	env.designs = newStubDesignStore(design)
	env.svc.designs = env.designs

	if _, err := env.svc.Transition(context.Background(), admin, design.ID, ActionAccept, nil); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}
	if _, err := env.svc.Transition(context.Background(), admin, design.ID, ActionAccept, nil); !errs.IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition on repeat, got %v", err)
	}

	history, _ := env.history.ForDesign(context.Background(), design.ID)
	if len(history) != 1 {
		t.Fatalf("expected exactly 1 history entry after repeat attempt, got %d", len(history))
	}
}

func TestStatsForDevelopment(t *testing.T) {
	env := newTestEnv()
	env.designs = newStubDesignStore(
		&models.Design{UserID: uuid.New(), Name: "A", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusAccepted},
		&models.Design{UserID: uuid.New(), Name: "B", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusInDevelopment},
		&models.Design{UserID: uuid.New(), Name: "C", Type: models.TypeLandingPage, PagesCount: 1, Status: models.StatusCompleted},
		&models.Design{UserID: uuid.New(), Name: "D", Type: models.TypeLandingPage, PagesCount: 1, Status: models.StatusPending},
	)
	env.svc.designs = env.designs

	stats, err := env.svc.StatsForDevelopment(context.Background())
	if err != nil {
		t.Fatalf("StatsForDevelopment returned error: %v", err)
	}
	if stats.Accepted != 1 || stats.InDevelopment != 1 || stats.Completed != 1 || stats.Total != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
