package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitInput carries a new design submission.
type SubmitInput struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PagesCount  int     `json:"pages_count"`
	FigmaLink   *string `json:"figma_link,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateInput carries a partial edit of a pending design. Nil fields are left
// unchanged.
type UpdateInput struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	PagesCount  *int    `json:"pages_count,omitempty"`
	FigmaLink   *string `json:"figma_link,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Submit validates a design submission and inserts it in status pending. The
// caller's profile is provisioned first if missing, so the ownership foreign
// key always resolves.
func (s *Service) Submit(ctx context.Context, ident *auth.Identity, in SubmitInput) (*models.Design, error) {
	if ident == nil {
		return nil, errs.NewAuthError()
	}

	designType := models.DesignType(in.Type)
	if err := validateSubmission(in.Name, designType, in.PagesCount, in.FigmaLink); err != nil {
		return nil, err
	}

	if _, err := s.ensureProfile(ctx, ident); err != nil {
		return nil, err
	}

	now := s.now()
	design := &models.Design{
		UserID:      ident.ID,
		Name:        strings.TrimSpace(in.Name),
		Type:        designType,
		PagesCount:  in.PagesCount,
		FigmaLink:   in.FigmaLink,
		Description: in.Description,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.designs.Create(ctx, design); err != nil {
		return nil, errs.NewDatabaseError("create", "design", err)
	}

	s.logger.Info().
		Str("designID", design.ID.String()).
		Str("userID", ident.ID.String()).
		Str("type", string(design.Type)).
		Msg("design submitted")
	return design, nil
}

// UpdateSubmission edits a design the caller owns while it is still pending.
// The merged result is re-validated as a whole.
func (s *Service) UpdateSubmission(ctx context.Context, ident *auth.Identity, designID uuid.UUID, in UpdateInput) (*models.Design, error) {
	if ident == nil {
		return nil, errs.NewAuthError()
	}

	design, err := s.designs.ByIDForOwner(ctx, designID, ident.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("design")
		}
		return nil, errs.NewDatabaseError("find", "design", err)
	}

	if design.Status != models.StatusPending {
		return nil, errs.NewConflictError("only pending designs can be edited")
	}

	if in.Name != nil {
		design.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		design.Type = models.DesignType(*in.Type)
	}
	if in.PagesCount != nil {
		design.PagesCount = *in.PagesCount
	}
	if in.FigmaLink != nil {
		design.FigmaLink = in.FigmaLink
	}
	if in.Description != nil {
		design.Description = in.Description
	}

	if err := validateSubmission(design.Name, design.Type, design.PagesCount, design.FigmaLink); err != nil {
		return nil, err
	}

	design.UpdatedAt = s.now()
	if err := s.designs.Update(ctx, design); err != nil {
		return nil, errs.NewDatabaseError("update", "design", err)
	}
	return design, nil
}

// WithdrawSubmission deletes a design the caller owns while it is still
// pending.
func (s *Service) WithdrawSubmission(ctx context.Context, ident *auth.Identity, designID uuid.UUID) error {
	if ident == nil {
		return errs.NewAuthError()
	}

	design, err := s.designs.ByIDForOwner(ctx, designID, ident.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("design")
		}
		return errs.NewDatabaseError("find", "design", err)
	}

	if design.Status != models.StatusPending {
		return errs.NewConflictError("only pending designs can be withdrawn")
	}

	if err := s.designs.Delete(ctx, design.ID); err != nil {
		return errs.NewDatabaseError("delete", "design", err)
	}

	s.logger.Info().Str("designID", designID.String()).Msg("design withdrawn")
	return nil
}

func validateSubmission(name string, designType models.DesignType, pagesCount int, figmaLink *string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name", "name must not be blank")
	}
	if !designType.Valid() {
		return errs.NewValidationError("type", fmt.Sprintf("unknown design type '%s'", designType))
	}
	if pagesCount < 1 {
		return errs.NewValidationError("pages_count", "pages count must be at least 1")
	}

	switch designType {
	case models.TypeWebsite:
		if pagesCount < 3 {
			return errs.NewValidationError("pages_count", "a website requires at least 3 pages")
		}
	case models.TypeLandingPage:
		if pagesCount != 1 {
			return errs.NewValidationError("pages_count", "a landing page has exactly 1 page")
		}
	}

	if figmaLink != nil && *figmaLink != "" {
		if err := validateFigmaLink(*figmaLink); err != nil {
			return err
		}
	}
	return nil
}

func validateFigmaLink(link string) error {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" {
		return errs.NewValidationError("figma_link", "figma link must be a valid URL")
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "figma.com" && !strings.HasSuffix(host, ".figma.com") {
		return errs.NewValidationError("figma_link", "figma link must point to figma.com")
	}
	return nil
}
