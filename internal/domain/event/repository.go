package event

import "context"

type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int64) (Event, error)

	// IDsByCompanies projects the ids of every event owned by any of the given
	// companies. Used to expand company entitlements down to event level.
	IDsByCompanies(ctx context.Context, companyIDs []int64) ([]int64, error)

	Create(ctx context.Context, newEvent Event) (Event, error)
	Update(ctx context.Context, id int64, req UpdateEventRequest) error
	Delete(ctx context.Context, id int64) error
}
