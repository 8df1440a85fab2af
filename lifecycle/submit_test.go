package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
)

func strptr(s string) *string { return &s }

func TestSubmitRequiresIdentity(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Submit(context.Background(), nil, SubmitInput{
		Name: "Shop", Type: "website", PagesCount: 3,
	})
	if !errs.IsNoIdentity(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     SubmitInput
		wantField string
	}{
		{
			name:      "blank name",
			input:     SubmitInput{Name: "   ", Type: "website", PagesCount: 3},
			wantField: "name",
		},
		{
			name:      "unknown type",
			input:     SubmitInput{Name: "Shop", Type: "mobile_app", PagesCount: 3},
			wantField: "type",
		},
		{
			name:      "zero pages",
			input:     SubmitInput{Name: "Shop", Type: "web_application", PagesCount: 0},
			wantField: "pages_count",
		},
		{
			name:      "website with too few pages",
			input:     SubmitInput{Name: "Shop", Type: "website", PagesCount: 2},
			wantField: "pages_count",
		},
		{
			name:      "landing page with more than one page",
			input:     SubmitInput{Name: "Landing", Type: "landing_page", PagesCount: 2},
			wantField: "pages_count",
		},
		{
			name:      "figma link not a URL",
			input:     SubmitInput{Name: "Shop", Type: "website", PagesCount: 3, FigmaLink: strptr("://broken")},
			wantField: "figma_link",
		},
		{
			name:      "figma link wrong host",
			input:     SubmitInput{Name: "Shop", Type: "website", PagesCount: 3, FigmaLink: strptr("https://example.com/file/abc")},
			wantField: "figma_link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			_, err := env.svc.Submit(context.Background(), testIdentity(), tt.input)
			if !errs.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var apiErr *errs.ApiErr
			if !errors.As(err, &apiErr) || apiErr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %+v", tt.wantField, err)
			}
		})
	}
}

func TestSubmitAcceptsValidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input SubmitInput
	}{
		{"website with three pages", SubmitInput{Name: "Shop", Type: "website", PagesCount: 3}},
		{"web application with one page", SubmitInput{Name: "App", Type: "web_application", PagesCount: 1}},
		{"landing page with one page", SubmitInput{Name: "Landing", Type: "landing_page", PagesCount: 1}},
		{"figma.com link", SubmitInput{Name: "Shop", Type: "website", PagesCount: 4, FigmaLink: strptr("https://www.figma.com/file/abc")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			design, err := env.svc.Submit(context.Background(), testIdentity(), tt.input)
			if err != nil {
				t.Fatalf("Submit returned error: %v", err)
			}
			if design.Status != models.StatusPending {
				t.Fatalf("expected status pending, got %s", design.Status)
			}
		})
	}
}

func TestSubmitCreatesPendingDesignAndProfile(t *testing.T) {
	env := newTestEnv()
	ident := testIdentity()

	design, err := env.svc.Submit(context.Background(), ident, SubmitInput{
		Name: "  Community Shop  ", Type: "website", PagesCount: 3,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if design.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", design.Status)
	}
	if design.Name != "Community Shop" {
		t.Fatalf("expected trimmed name, got %q", design.Name)
	}
	if design.UserID != ident.ID {
		t.Fatalf("owner mismatch: %s", design.UserID)
	}

	// Submission writes no history; the audit trail starts with the first
	// transition.
	history, _ := env.history.ForDesign(context.Background(), design.ID)
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(history))
	}

	profile, ok := env.profiles.profiles[ident.ID]
	if !ok {
		t.Fatal("expected profile to be auto-provisioned")
	}
	if profile.Role != models.RoleStudent {
		t.Fatalf("expected default role student, got %s", profile.Role)
	}
	if profile.Email != ident.Email {
		t.Fatalf("expected email %q, got %q", ident.Email, profile.Email)
	}
}

func TestSubmitToleratesProfileCreateRace(t *testing.T) {
	env := newTestEnv()
	ident := testIdentity()

	// Another request wins the provisioning race: the first lookup misses,
	// the insert hits the unique constraint, the re-read succeeds.
	env.profiles.profiles[ident.ID] = &models.Profile{ID: ident.ID, Email: ident.Email, Role: models.RoleStudent}
	env.profiles.failFirstLookup = true
	env.profiles.createErr = uniqueViolationErr()

	if _, err := env.svc.Submit(context.Background(), ident, SubmitInput{
		Name: "Shop", Type: "website", PagesCount: 3,
	}); err != nil {
		t.Fatalf("expected duplicate profile create to be tolerated, got %v", err)
	}
}

func TestUpdateSubmissionOnlyWhilePending(t *testing.T) {
	env := newTestEnv()
	ident := testIdentity()

	design := &models.Design{UserID: ident.ID, Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusAccepted}
	env.designs = newStubDesignStore(design)
	env.svc.designs = env.designs

	_, err := env.svc.UpdateSubmission(context.Background(), ident, design.ID, UpdateInput{Name: strptr("New Name")})
	if !errs.IsConflict(err) {
		t.Fatalf("expected conflict for non-pending design, got %v", err)
	}
}

func TestUpdateSubmissionRevalidatesMergedResult(t *testing.T) {
	env := newTestEnv()
	ident := testIdentity()

	design := &models.Design{UserID: ident.ID, Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
	env.designs = newStubDesignStore(design)
	env.svc.designs = env.designs

	two := 2
	_, err := env.svc.UpdateSubmission(context.Background(), ident, design.ID, UpdateInput{PagesCount: &two})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error for website with 2 pages, got %v", err)
	}

	name := "Renamed Shop"
	updated, err := env.svc.UpdateSubmission(context.Background(), ident, design.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateSubmission returned error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name %q, got %q", name, updated.Name)
	}
}

func TestWithdrawSubmission(t *testing.T) {
	env := newTestEnv()
	ident := testIdentity()
	other := testIdentity()

	pending := &models.Design{UserID: ident.ID, Name: "Shop", Type: models.TypeWebsite, PagesCount: 3, Status: models.StatusPending}
	accepted := &models.Design{UserID: ident.ID, Name: "App", Type: models.TypeWebApplication, PagesCount: 2, Status: models.StatusAccepted}
	env.designs = newStubDesignStore(pending, accepted)
	env.svc.designs = env.designs

	// Someone else's design is invisible.
	if err := env.svc.WithdrawSubmission(context.Background(), other, pending.ID); !errs.IsNotFound(err) {
		t.Fatalf("expected not found for non-owner, got %v", err)
	}

	// Non-pending designs cannot be withdrawn.
	if err := env.svc.WithdrawSubmission(context.Background(), ident, accepted.ID); !errs.IsConflict(err) {
		t.Fatalf("expected conflict for accepted design, got %v", err)
	}

	if err := env.svc.WithdrawSubmission(context.Background(), ident, pending.ID); err != nil {
		t.Fatalf("WithdrawSubmission returned error: %v", err)
	}
	if _, ok := env.designs.designs[pending.ID]; ok {
		t.Fatal("expected design to be deleted")
	}
}
