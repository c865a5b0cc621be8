package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/event"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/middleware"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{
		eventService: eventService,
	}
}

// Create implements EventHandler.
func (h *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq event.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OrganizerID = middleware.UserIDFromContext(r.Context())

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.eventService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", event.ToResponse(created))
}

// List implements EventHandler.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r.Context())

	events, err := h.eventService.List(r.Context(), requesterID)
	if err != nil {
		slog.Error("List events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, event.ToResponseList(events))
}

// GetByID implements EventHandler.
func (h *EventHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, event.ToResponse(e))
}

// CreateShift implements EventHandler.
func (h *EventHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var createReq event.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EventID = chi.URLParam(r, "id")

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.eventService.CreateShift(r.Context(), createReq)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", event.ToShiftResponse(created))
}

// ListShifts implements EventHandler.
func (h *EventHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	shifts, err := h.eventService.ListShifts(r.Context(), eventID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]event.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, event.ToShiftResponse(s))
	}
	response.Success(w, responses)
}
