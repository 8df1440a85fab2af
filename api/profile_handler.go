package api

import (
	"encoding/json"
	"net/http"

	"github.com/OpenStag/openstage-website/database"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/lifecycle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder       Responder
	logger          zerolog.Logger
	engine          *lifecycle.Service
	profileRepo     *database.ProfileRepo
	skillRepo       *database.SkillRepo
	achievementRepo *database.AchievementRepo
}

func newProfileHandler(engine *lifecycle.Service, profileRepo *database.ProfileRepo, skillRepo *database.SkillRepo, achievementRepo *database.AchievementRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		engine:          engine,
		profileRepo:     profileRepo,
		skillRepo:       skillRepo,
		achievementRepo: achievementRepo,
	}
}

// profileUpdateRequest carries the editable profile fields. Nil fields are
// left unchanged.
type profileUpdateRequest struct {
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Username          *string `json:"username,omitempty"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Location          *string `json:"location,omitempty"`
	LinkedinURL       *string `json:"linkedin_url,omitempty"`
	GithubURL         *string `json:"github_url,omitempty"`
	PortfolioURL      *string `json:"portfolio_url,omitempty"`
	YearsOfExperience *int    `json:"years_of_experience,omitempty"`
}

// getProfile returns the caller's profile, provisioning it on first access
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.engine.ProfileFor(r.Context(), identityFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile edits the caller's own profile
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		profile, err := h.engine.ProfileFor(r.Context(), identityFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.FirstName != nil {
			profile.FirstName = req.FirstName
		}
		if req.LastName != nil {
			profile.LastName = req.LastName
		}
		if req.Username != nil {
			profile.Username = req.Username
		}
		if req.AvatarURL != nil {
			profile.AvatarURL = req.AvatarURL
		}
		if req.Bio != nil {
			profile.Bio = req.Bio
		}
		if req.Phone != nil {
			profile.Phone = req.Phone
		}
		if req.Location != nil {
			profile.Location = req.Location
		}
		if req.LinkedinURL != nil {
			profile.LinkedinURL = req.LinkedinURL
		}
		if req.GithubURL != nil {
			profile.GithubURL = req.GithubURL
		}
		if req.PortfolioURL != nil {
			profile.PortfolioURL = req.PortfolioURL
		}
		if req.YearsOfExperience != nil {
			if *req.YearsOfExperience < 0 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("years_of_experience", "must not be negative"))
				return
			}
			profile.YearsOfExperience = *req.YearsOfExperience
		}

		if err := h.profileRepo.Update(r.Context(), profile); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// getStats returns the caller's derived points, level and badges
func (h profileHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := identityFromCtx(r.Context())
		if ident == nil {
			h.responder.WriteError(w, errs.NewAuthError())
			return
		}

		stats, err := h.engine.StatsFor(r.Context(), ident.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

// getSkills returns the skill catalog
func (h profileHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// getAchievements returns the badge catalog
func (h profileHandler) getAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := h.achievementRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "achievements", err))
			return
		}

		h.responder.WriteJSON(w, achievements)
	}
}
