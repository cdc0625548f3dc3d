package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// List implements EventHandler.
func (e *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	events, err := e.eventService.List(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]event.EventResponse, 0, len(events))
	for _, item := range events {
		out = append(out, event.ToResponse(item))
	}
	response.Success(w, out)
}

// GetByID implements EventHandler.
func (e *EventHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid event id", nil)
		return
	}

	eventData, err := e.eventService.GetByID(r.Context(), userID, role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, event.ToResponse(eventData))
}

// Create implements EventHandler.
func (e *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req event.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.eventService.Create(r.Context(), userID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Event created successfully", event.ToResponse(created))
}

// Update implements EventHandler.
func (e *EventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid event id", nil)
		return
	}

	var req event.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := e.eventService.Update(r.Context(), userID, role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event updated successfully", nil)
}

// Delete implements EventHandler.
func (e *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid event id", nil)
		return
	}

	if err := e.eventService.Delete(r.Context(), userID, role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}
