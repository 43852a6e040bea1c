package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/errs"
	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	gw        *gateway.Client
}

func newContactHandler(gw *gateway.Client) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gw:        gw,
	}
}

// sendMessage forwards a contact-form submission to the backend.
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		for field, value := range map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		} {
			if strings.TrimSpace(value) == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		if err := h.gw.SendMessage(r.Context(), msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, statusResponse{
			Status:  "success",
			Message: "¡MENSAJE ENVIADO CON ÉXITO! TE RESPONDERÉ MUY PRONTO.",
		})
	}
}
