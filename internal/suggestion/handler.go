package suggestion

import (
	"net/http"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// SuggestMessages ignores any request body and always answers 200.
//
// @Summary     Suggest three conversation-starter questions
// @Description Asks Gemini for three conversation starters joined by ||. Falls back to a canned triple on any failure, so the status is always 200.
// @Tags        suggestions
// @Produce     json
// @Success     200 {object} SuggestionResponse
// @Router      /api/suggest-messages [post]
func (h *Handler) SuggestMessages(w http.ResponseWriter, r *http.Request) {
	triple := h.service.GenerateSuggestions(r.Context())

	config.JSON(w, http.StatusOK, SuggestionResponse{
		Summary: triple.String(),
	})
}
