package api

import (
	"encoding/json"
	"net/http"

	"github.com/OpenStag/openstage-website/database"
	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/lifecycle"
	"github.com/OpenStag/openstage-website/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type designHandler struct {
	responder  Responder
	logger     zerolog.Logger
	engine     *lifecycle.Service
	designRepo *database.DesignRepo
}

func newDesignHandler(engine *lifecycle.Service, designRepo *database.DesignRepo) designHandler {
	logger := log.With().Str("handlerName", "designHandler").Logger()

	return designHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		engine:     engine,
		designRepo: designRepo,
	}
}

// DesignCollection represents multiple designs
type DesignCollection struct {
	Designs []models.Design `json:"designs"`
	Total   int             `json:"total"`
}

// transitionRequest is the body of a status transition call
type transitionRequest struct {
	Action string  `json:"action"`
	Notes  *string `json:"notes,omitempty"`
}

// submitDesign creates a new design in status pending
func (h designHandler) submitDesign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input lifecycle.SubmitInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		design, err := h.engine.Submit(r.Context(), identityFromCtx(r.Context()), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, design)
	}
}

// getMyDesigns lists the caller's designs with their status history
func (h designHandler) getMyDesigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := identityFromCtx(r.Context())
		if ident == nil {
			h.responder.WriteError(w, errs.NewAuthError())
			return
		}

		designs, err := h.designRepo.ByOwner(r.Context(), ident.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "designs", err))
			return
		}

		h.responder.WriteJSON(w, DesignCollection{Designs: designs, Total: len(designs)})
	}
}

// getDesign returns one of the caller's designs with history and team
func (h designHandler) getDesign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := identityFromCtx(r.Context())
		if ident == nil {
			h.responder.WriteError(w, errs.NewAuthError())
			return
		}

		designID, err := parseDesignID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		design, err := h.designRepo.ByIDForOwner(r.Context(), designID, ident.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "design", err))
			return
		}

		team, err := h.engine.TeamFor(r.Context(), designID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		design.TeamMembers = team

		h.responder.WriteJSON(w, design)
	}
}

// updateDesign edits a pending design owned by the caller
func (h designHandler) updateDesign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		designID, err := parseDesignID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input lifecycle.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		design, err := h.engine.UpdateSubmission(r.Context(), identityFromCtx(r.Context()), designID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, design)
	}
}

// deleteDesign withdraws a pending design owned by the caller
func (h designHandler) deleteDesign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		designID, err := parseDesignID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.engine.WithdrawSubmission(r.Context(), identityFromCtx(r.Context()), designID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "deleted"})
	}
}

// transitionStatus moves a design along the lifecycle state machine
func (h designHandler) transitionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		designID, err := parseDesignID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		action, err := lifecycle.ParseAction(req.Action)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		design, err := h.engine.Transition(r.Context(), identityFromCtx(r.Context()), designID, action, req.Notes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, design)
	}
}

func parseDesignID(r *http.Request) (uuid.UUID, error) {
	designIDStr := chi.URLParam(r, "designID")
	if designIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing designID")
	}

	designID, err := uuid.Parse(designIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid designID")
	}
	return designID, nil
}
