package bill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rudrap/splitmate/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /bills
// @Summary      Record a new bill
// @Description  Record an equally split expense and apply the balance deltas. The payer must be one of the participants.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.Envelope{data=BillResponse}
// @Failure      400 {object} response.Envelope
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if field, ok := validationField(err); ok {
			response.ValidationError(w, field, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// validationField maps a service validation error to the request field it
// concerns.
func validationField(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrEmptyDescription):
		return "description", true
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountTooLarge):
		return "amount", true
	case errors.Is(err, ErrInvalidCategory):
		return "category", true
	case errors.Is(err, ErrNoParticipants), errors.Is(err, ErrUnknownParticipant):
		return "participants", true
	case errors.Is(err, ErrUnknownPayer), errors.Is(err, ErrPayerNotIncluded):
		return "paid_by", true
	}
	return "", false
}

// List handles GET /bills
// @Summary      List all bills
// @Tags         bills
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]BillResponse}
// @Router       /bills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bills := h.service.List(r.Context())

	out := make([]*BillResponse, len(bills))
	for i, b := range bills {
		out[i] = b.ToResponse()
	}

	response.JSON(w, http.StatusOK, out)
}

// GetByID handles GET /bills/{id}
// @Summary      Get bill by ID
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.Envelope{data=BillResponse}
// @Failure      404 {object} response.Envelope
// @Router       /bills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Description  Reverse the bill's balance deltas and remove the record
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted successfully"})
}
