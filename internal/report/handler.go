package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitreport/pkg/response"
)

// Handler handles HTTP requests for balance reports
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{userID}/balances", h.GetBalances)

	return r
}

// GetBalances handles GET /reports/{userID}/balances
// @Summary      Get a balance report
// @Description  Compute individual and per-group balances for a user; group_id filters the expense list
// @Tags         reports
// @Produce      json
// @Param        userID path string true "Subject user ID"
// @Param        group_id query string false "Restrict the expense list to one group"
// @Success      200 {object} response.APIResponse{data=ReportResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /reports/{userID}/balances [get]
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "userID")
	groupID := r.URL.Query().Get("group_id")

	report, err := h.service.BuildReport(r.Context(), subjectID, groupID)
	if err != nil {
		if errors.Is(err, ErrSubjectNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build report")
		return
	}

	response.JSON(w, http.StatusOK, report.ToResponse())
}
