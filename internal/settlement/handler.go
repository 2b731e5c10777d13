package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rudrap/splitmate/internal/friend"
	"github.com/rudrap/splitmate/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/suggestions", h.Suggestions)
	r.Post("/settle-up/{friendId}", h.SettleUp)

	return r
}

// Suggestions handles GET /settlements/suggestions
// @Summary      Suggest settlements
// @Description  Get the minimal list of payments that would zero out all balances. Read-only; balances are not mutated.
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]SuggestionResponse}
// @Router       /settlements/suggestions [get]
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Suggestions(r.Context()))
}

// SettleUp handles POST /settlements/settle-up/{friendId}
// @Summary      Settle up a debtor
// @Description  Force one debtor's balance to zero by drawing down available creditor balances. A no-op for friends who owe nothing.
// @Tags         settlements
// @Produce      json
// @Param        friendId path string true "Friend ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /settlements/settle-up/{friendId} [post]
func (h *Handler) SettleUp(w http.ResponseWriter, r *http.Request) {
	friendID := chi.URLParam(r, "friendId")

	if err := h.service.SettleUp(r.Context(), friendID); err != nil {
		if errors.Is(err, friend.ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to settle up")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Settled up successfully"})
}
