package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type EventServiceImpl struct {
	event.EventRepository
	authz *authz.Service
}

func NewEventService(eventRepository event.EventRepository, authzService *authz.Service) event.EventService {
	return &EventServiceImpl{
		EventRepository: eventRepository,
		authz:           authzService,
	}
}

// List implements event.EventService.
func (e *EventServiceImpl) List(ctx context.Context, userID int64, role user.Role) ([]event.Event, error) {
	events, err := e.EventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return authz.FilterEvents(ctx, e.authz, userID, role, events)
}

// GetByID implements event.EventService.
func (e *EventServiceImpl) GetByID(ctx context.Context, userID int64, role user.Role, id int64) (event.Event, error) {
	eventData, err := e.EventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event by ID: %w", err)
	}

	if !e.authz.CanAccessEvent(ctx, userID, role, eventData.ID, eventData.CompanyID) {
		return event.Event{}, event.ErrEventAccessDenied
	}
	return eventData, nil
}

// Create implements event.EventService. Event-scoped roles cannot create
// events; everyone else needs access to the owning company.
func (e *EventServiceImpl) Create(ctx context.Context, userID int64, role user.Role, req event.CreateEventRequest) (event.Event, error) {
	if err := req.Validate(); err != nil {
		return event.Event{}, err
	}
	if user.IsEventScoped(role) || !e.authz.CanAccessCompany(ctx, userID, role, req.CompanyID) {
		return event.Event{}, event.ErrEventAccessDenied
	}

	created, err := e.EventRepository.Create(ctx, event.Event{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		City:      req.City,
		StartDate: req.ParsedStartDate(),
		EndDate:   req.ParsedEndDate(),
		Active:    true,
	})
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// Update implements event.EventService.
func (e *EventServiceImpl) Update(ctx context.Context, userID int64, role user.Role, id int64, req event.UpdateEventRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	eventData, err := e.EventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event by ID: %w", err)
	}
	if user.IsEventScoped(role) || !e.authz.CanAccessCompany(ctx, userID, role, eventData.CompanyID) {
		return event.ErrEventAccessDenied
	}
	// Moving an event to another company also needs access to the target.
	if req.CompanyID != nil && !e.authz.CanAccessCompany(ctx, userID, role, *req.CompanyID) {
		return event.ErrEventAccessDenied
	}

	if err := e.EventRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete implements event.EventService.
func (e *EventServiceImpl) Delete(ctx context.Context, userID int64, role user.Role, id int64) error {
	eventData, err := e.EventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event by ID: %w", err)
	}
	if user.IsEventScoped(role) || !e.authz.CanAccessCompany(ctx, userID, role, eventData.CompanyID) {
		return event.ErrEventAccessDenied
	}
	return e.EventRepository.Delete(ctx, id)
}
