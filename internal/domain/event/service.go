package event

import (
	"context"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type EventService interface {
	// List returns only the events the caller is entitled to see.
	List(ctx context.Context, userID int64, role user.Role) ([]Event, error)
	GetByID(ctx context.Context, userID int64, role user.Role, id int64) (Event, error)

	// Mutations require access to the owning company.
	Create(ctx context.Context, userID int64, role user.Role, req CreateEventRequest) (Event, error)
	Update(ctx context.Context, userID int64, role user.Role, id int64, req UpdateEventRequest) error
	Delete(ctx context.Context, userID int64, role user.Role, id int64) error
}
