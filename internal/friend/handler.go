package friend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rudrap/splitmate/internal/bill"
	"github.com/rudrap/splitmate/pkg/response"
)

// Handler handles HTTP requests for friend operations
type Handler struct {
	service *Service
}

// NewHandler creates a new friend handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for friend endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/bills", h.Bills)

	return r
}

// Create handles POST /friends
// @Summary      Register a new friend
// @Description  Register a friend with a zero starting balance. Names are 2-30 characters and unique (case-insensitive).
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body CreateFriendRequest true "Friend registration request"
// @Success      201 {object} response.Envelope{data=FriendResponse}
// @Failure      400 {object} response.Envelope
// @Failure      409 {object} response.Envelope
// @Router       /friends [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	f, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTooShort), errors.Is(err, ErrNameTooLong):
			response.ValidationError(w, "name", err.Error())
		case errors.Is(err, ErrNameTaken):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to create friend")
		}
		return
	}

	response.JSON(w, http.StatusCreated, f.ToResponse(h.service.Ledger().Balance(f.ID)))
}

// List handles GET /friends
// @Summary      List all friends
// @Description  Get all friends with their current net balances, in registration order
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]FriendResponse}
// @Router       /friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	friends := h.service.List(r.Context())

	out := make([]*FriendResponse, len(friends))
	for i, f := range friends {
		out[i] = f.ToResponse(h.service.Ledger().Balance(f.ID))
	}

	response.JSON(w, http.StatusOK, out)
}

// GetByID handles GET /friends/{id}
// @Summary      Get friend by ID
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.Envelope{data=FriendResponse}
// @Failure      404 {object} response.Envelope
// @Router       /friends/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	f, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get friend")
		return
	}

	response.JSON(w, http.StatusOK, f.ToResponse(h.service.Ledger().Balance(f.ID)))
}

// Delete handles DELETE /friends/{id}
// @Summary      Remove a friend
// @Description  Remove a friend, drop them from every bill's participant set, and delete bills left with no participants. Other balances are not adjusted.
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /friends/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete friend")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Friend deleted successfully"})
}

// Bills handles GET /friends/{id}/bills
// @Summary      List a friend's bills
// @Description  Get every bill the friend paid for or participates in
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.Envelope{data=[]bill.BillResponse}
// @Failure      404 {object} response.Envelope
// @Router       /friends/{id}/bills [get]
func (h *Handler) Bills(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	bills, err := h.service.Bills(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list bills")
		return
	}

	out := make([]*bill.BillResponse, len(bills))
	for i, b := range bills {
		out[i] = b.ToResponse()
	}

	response.JSON(w, http.StatusOK, out)
}
