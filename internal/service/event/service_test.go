package event

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type fakeLinks struct {
	companies map[int64][]int64
	events    map[int64][]int64
}

func (f *fakeLinks) CompanyIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	return f.companies[userID], nil
}

func (f *fakeLinks) EventIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	return f.events[userID], nil
}

type fakeEventRepo struct {
	events []event.Event
}

func (f *fakeEventRepo) List(_ context.Context) ([]event.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (event.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return event.Event{}, pgx.ErrNoRows
}

func (f *fakeEventRepo) IDsByCompanies(_ context.Context, companyIDs []int64) ([]int64, error) {
	set := make(map[int64]struct{}, len(companyIDs))
	for _, id := range companyIDs {
		set[id] = struct{}{}
	}
	var ids []int64
	for _, e := range f.events {
		if _, ok := set[e.CompanyID]; ok {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (f *fakeEventRepo) Create(_ context.Context, newEvent event.Event) (event.Event, error) {
	newEvent.ID = int64(len(f.events) + 1)
	f.events = append(f.events, newEvent)
	return newEvent, nil
}

func (f *fakeEventRepo) Update(_ context.Context, _ int64, _ event.UpdateEventRequest) error {
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, _ int64) error { return nil }

func strPtr(s string) *string { return &s }

// User 10 is linked to company 1, user 20 to event 1 only.
func newFixture() (event.EventService, *fakeEventRepo) {
	links := &fakeLinks{
		companies: map[int64][]int64{10: {1}},
		events:    map[int64][]int64{20: {1}},
	}
	repo := &fakeEventRepo{events: []event.Event{
		{ID: 1, CompanyID: 1, Name: "Festival Norte"},
	}}
	return NewEventService(repo, authz.NewService(links, repo)), repo
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores the submitted dates", func(t *testing.T) {
		svc, _ := newFixture()
		created, err := svc.Create(ctx, 10, user.RoleGerenteRegional, event.CreateEventRequest{
			CompanyID: 1,
			Name:      "Festa Junina",
			StartDate: strPtr("2026-11-05"),
			EndDate:   strPtr("2026-11-07"),
		})
		require.NoError(t, err)
		assert.True(t, created.Active)
		require.NotNil(t, created.StartDate)
		require.NotNil(t, created.EndDate)
		assert.Equal(t, time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC), *created.StartDate)
		assert.Equal(t, time.Date(2026, time.November, 7, 0, 0, 0, 0, time.UTC), *created.EndDate)
	})

	t.Run("dates are optional", func(t *testing.T) {
		svc, _ := newFixture()
		created, err := svc.Create(ctx, 10, user.RoleGerenteRegional, event.CreateEventRequest{
			CompanyID: 1,
			Name:      "Sem Datas",
		})
		require.NoError(t, err)
		assert.Nil(t, created.StartDate)
		assert.Nil(t, created.EndDate)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Create(ctx, 10, user.RoleGerenteRegional, event.CreateEventRequest{
			CompanyID: 1,
			Name:      "Invertido",
			StartDate: strPtr("2026-11-07"),
			EndDate:   strPtr("2026-11-05"),
		})
		assert.Error(t, err)
	})

	t.Run("event-scoped role cannot create", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Create(ctx, 20, user.RoleLiderEvento, event.CreateEventRequest{
			CompanyID: 1,
			Name:      "Novo",
		})
		assert.ErrorIs(t, err, event.ErrEventAccessDenied)
	})

	t.Run("denied outside the caller's companies", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Create(ctx, 10, user.RoleGerenteRegional, event.CreateEventRequest{
			CompanyID: 2,
			Name:      "Alheio",
		})
		assert.ErrorIs(t, err, event.ErrEventAccessDenied)
	})
}

func TestGetEventAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newFixture()

	t.Run("direct event link grants read", func(t *testing.T) {
		got, err := svc.GetByID(ctx, 20, user.RoleLiderEvento, 1)
		require.NoError(t, err)
		assert.Equal(t, "Festival Norte", got.Name)
	})

	t.Run("unlinked user denied", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 42, user.RoleMonitor, 1)
		assert.ErrorIs(t, err, event.ErrEventAccessDenied)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 10, user.RoleAdministrador, 404)
		assert.ErrorIs(t, err, event.ErrEventNotFound)
	})
}
