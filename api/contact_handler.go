package api

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/OpenStag/openstage-website/errs"
	"github.com/OpenStag/openstage-website/models"
	"github.com/OpenStag/openstage-website/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contactStore is the persistence surface the handler needs; satisfied by
// database.ContactRepo.
type contactStore interface {
	Add(ctx context.Context, message *models.ContactMessage) error
}

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	relay       services.EmailRelay
	contactRepo contactStore
	recipient   string
}

func newContactHandler(relay services.EmailRelay, contactRepo contactStore, recipient string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		relay:       relay,
		contactRepo: contactRepo,
		recipient:   recipient,
	}
}

// contactRequest is a contact-form submission
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// submitMessage stores the message and relays it to the email provider. The
// row is written first so a relay failure never loses the message.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		for field, value := range map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
			"message": req.Message,
		} {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		messageType := req.Type
		if messageType == "" {
			messageType = "general"
		}

		record := &models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
			Type:    messageType,
			Status:  "new",
		}
		if err := h.contactRepo.Add(r.Context(), record); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact message", err))
			return
		}

		body := fmt.Sprintf("<p>Name: %s</p><p>Email: %s</p><p>Message: %s</p>",
			html.EscapeString(req.Name),
			html.EscapeString(req.Email),
			html.EscapeString(req.Message),
		)
		relayID, err := h.relay.Send(r.Context(), req.Subject, body, []string{h.recipient})
		if err != nil {
			h.logger.Error().Err(err).Str("messageID", record.ID.String()).Msg("contact relay failed")
			h.responder.WriteError(w, errs.NewEmailRelayError(err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": "Email sent successfully",
			"id":      relayID,
		})
	}
}
