package summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rudrap/splitmate/pkg/response"
)

// Handler handles HTTP requests for summary views
type Handler struct {
	service *Service
}

// NewHandler creates a new summary handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for summary endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Overall)
	r.Get("/monthly", h.Monthly)

	return r
}

// Overall handles GET /summary
// @Summary      Group summary
// @Description  Get total owed, total owing, total expenses, and record counts
// @Tags         summary
// @Produce      json
// @Success      200 {object} response.Envelope{data=SummaryResponse}
// @Router       /summary [get]
func (h *Handler) Overall(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Overall(r.Context()))
}

// Monthly handles GET /summary/monthly
// @Summary      Monthly expense summary
// @Description  Get totals for bills dated within one calendar month
// @Tags         summary
// @Produce      json
// @Param        year query int true "Year"
// @Param        month query int true "Month (1-12)"
// @Success      200 {object} response.Envelope{data=MonthlySummaryResponse}
// @Failure      400 {object} response.Envelope
// @Router       /summary/monthly [get]
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.ValidationError(w, "year", "year must be a number")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.ValidationError(w, "month", "month must be a number")
		return
	}

	out, err := h.service.Monthly(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidYear):
			response.ValidationError(w, "year", err.Error())
		case errors.Is(err, ErrInvalidMonth):
			response.ValidationError(w, "month", err.Error())
		default:
			response.InternalError(w, "Failed to compute summary")
		}
		return
	}

	response.JSON(w, http.StatusOK, out)
}
