package api

import (
	"net/http"

	"github.com/OpenStag/openstage-website/database"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/lifecycle"
	"github.com/OpenStag/openstage-website/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type developmentHandler struct {
	responder  Responder
	logger     zerolog.Logger
	engine     *lifecycle.Service
	designRepo *database.DesignRepo
}

func newDevelopmentHandler(engine *lifecycle.Service, designRepo *database.DesignRepo) developmentHandler {
	logger := log.With().Str("handlerName", "developmentHandler").Logger()

	return developmentHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		engine:     engine,
		designRepo: designRepo,
	}
}

// DesignWithTeam pairs a design with its current team and free-slot count.
type DesignWithTeam struct {
	Design      models.Design                  `json:"design"`
	Team        []models.DevelopmentTeamMember `json:"team"`
	JoinedCount int                            `json:"joined_count"`
	FreeSlots   int                            `json:"free_slots"`
}

// DevelopmentCollection represents designs visible on the development board
type DevelopmentCollection struct {
	Designs []DesignWithTeam `json:"designs"`
	Total   int              `json:"total"`
}

// getDevelopmentDesigns lists accepted, in-development and completed designs
// with their teams
func (h developmentHandler) getDevelopmentDesigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := []models.DesignStatus{
			models.StatusAccepted, models.StatusInDevelopment, models.StatusCompleted,
		}
		if requested := models.DesignStatus(r.URL.Query().Get("status")); requested != "" {
			if !requested.Valid() || requested == models.StatusPending || requested == models.StatusRejected {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "not a development status"))
				return
			}
			statuses = []models.DesignStatus{requested}
		}

		designs, err := h.designRepo.ByStatuses(r.Context(), statuses)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "designs", err))
			return
		}

		collection := DevelopmentCollection{Designs: make([]DesignWithTeam, 0, len(designs))}
		for _, design := range designs {
			team, err := h.engine.TeamFor(r.Context(), design.ID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}

			freeSlots := design.PagesCount - len(team)
			if freeSlots < 0 {
				freeSlots = 0
			}
			collection.Designs = append(collection.Designs, DesignWithTeam{
				Design:      design,
				Team:        team,
				JoinedCount: len(team),
				FreeSlots:   freeSlots,
			})
		}
		collection.Total = len(collection.Designs)

		h.responder.WriteJSON(w, collection)
	}
}

// getStats returns the development board counters
func (h developmentHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.engine.StatsForDevelopment(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

// joinTeam claims a slot on a design's development team
func (h developmentHandler) joinTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		designID, err := parseDesignID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member, err := h.engine.JoinTeam(r.Context(), identityFromCtx(r.Context()), designID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, member)
	}
}
