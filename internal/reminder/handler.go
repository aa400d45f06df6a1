package reminder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitreport/pkg/response"
)

// Handler handles HTTP requests for reminder operations
type Handler struct {
	service *Service
}

// NewHandler creates a new reminder handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for reminder endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}

// Create handles POST /reminders
// @Summary      Send a payment reminder
// @Description  Record a reminder for one participant of an expense
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        request body CreateReminderRequest true "Reminder creation request"
// @Success      201 {object} response.APIResponse{data=ReminderResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /reminders [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	reminder, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrExpenseNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotParticipant), errors.Is(err, ErrRecipientMissing):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create reminder")
		}
		return
	}

	response.JSON(w, http.StatusCreated, reminder.ToResponse())
}

// List handles GET /reminders?to={ref}
// @Summary      List reminders for a recipient
// @Description  Get all reminders addressed to a reference
// @Tags         reminders
// @Produce      json
// @Param        to query string true "Recipient reference"
// @Success      200 {object} response.APIResponse{data=[]ReminderResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /reminders [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	toRef := r.URL.Query().Get("to")
	if toRef == "" {
		response.BadRequest(w, "Query parameter 'to' is required")
		return
	}

	reminders, err := h.service.ListByRecipient(r.Context(), toRef)
	if err != nil {
		response.InternalError(w, "Failed to list reminders")
		return
	}

	reminderResponses := make([]*ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		reminderResponses[i] = reminder.ToResponse()
	}

	response.JSON(w, http.StatusOK, reminderResponses)
}
