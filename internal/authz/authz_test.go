package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/company"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type fakeLinks struct {
	companiesByUser map[int64][]int64
	eventsByUser    map[int64][]int64
	err             error
}

func (f *fakeLinks) CompanyIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companiesByUser[userID], nil
}

func (f *fakeLinks) EventIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.eventsByUser[userID], nil
}

type fakeEvents struct {
	byCompany map[int64][]int64
	err       error
}

func (f *fakeEvents) IDsByCompanies(_ context.Context, companyIDs []int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []int64
	for _, cid := range companyIDs {
		out = append(out, f.byCompany[cid]...)
	}
	return out, nil
}

func ptr(v int64) *int64 { return &v }

func newFixture() (*Service, *fakeLinks, *fakeEvents) {
	links := &fakeLinks{
		companiesByUser: map[int64][]int64{},
		eventsByUser:    map[int64][]int64{},
	}
	events := &fakeEvents{byCompany: map[int64][]int64{}}
	return NewService(links, events), links, events
}

func TestUserCompanyIDs_GlobalRoleBypassesLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.companiesByUser[1] = []int64{10, 20}

	assert.Empty(t, svc.UserCompanyIDs(ctx, 1, user.RoleAdministrador))
	assert.ElementsMatch(t, []int64{10, 20}, svc.UserCompanyIDs(ctx, 1, user.RoleGerenteRegional))
}

func TestUserEventIDs_StorageFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{5}
	links.err = errors.New("connection refused")

	assert.Empty(t, svc.UserEventIDs(ctx, 1, user.RoleLiderEvento))
	assert.Empty(t, svc.UserCompanyIDs(ctx, 1, user.RoleGerenteRegional))
}

func TestCanAccessCompany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.companiesByUser[7] = []int64{10}
	links.eventsByUser[8] = []int64{100}

	assert.True(t, svc.CanAccessCompany(ctx, 7, user.RoleAdministrador, 99))
	assert.True(t, svc.CanAccessCompany(ctx, 7, user.RoleGerenteRegional, 10))
	assert.False(t, svc.CanAccessCompany(ctx, 7, user.RoleGerenteRegional, 11))

	// An event link alone grants no company visibility.
	assert.False(t, svc.CanAccessCompany(ctx, 8, user.RoleLiderEvento, 10))
}

func TestCanAccessEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.companiesByUser[7] = []int64{10}
	links.eventsByUser[8] = []int64{100}

	// Company-scoped users reach events through the owning company.
	assert.True(t, svc.CanAccessEvent(ctx, 7, user.RoleGerenteRegional, 100, 10))
	assert.False(t, svc.CanAccessEvent(ctx, 7, user.RoleGerenteRegional, 200, 11))

	// Event-scoped users need a direct link.
	assert.True(t, svc.CanAccessEvent(ctx, 8, user.RoleLiderEvento, 100, 10))
	assert.False(t, svc.CanAccessEvent(ctx, 8, user.RoleLiderEvento, 200, 10))

	assert.True(t, svc.CanAccessEvent(ctx, 9, user.RoleGerenteGeral, 200, 11))
}

func TestFilterCompanies_GlobalReturnsInputUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newFixture()

	companies := []company.Company{{ID: 1}, {ID: 2}, {ID: 3}}
	got, err := FilterCompanies(ctx, svc, 1, user.RoleLiderFinanceiro, companies)
	require.NoError(t, err)
	assert.Equal(t, companies, got)
}

func TestFilterCompanies_CompanyScopedKeepsOnlyEntitled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.companiesByUser[1] = []int64{1}

	companies := []company.Company{{ID: 1}, {ID: 2}}
	got, err := FilterCompanies(ctx, svc, 1, user.RoleGerenteRegional, companies)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterCompanies_EventScopedSeesNoCompanies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{100}

	companies := []company.Company{{ID: 1}, {ID: 2}}
	got, err := FilterCompanies(ctx, svc, 1, user.RoleLiderEvento, companies)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterEvents_CompanyScopedNeedsNoDirectEventLink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.companiesByUser[1] = []int64{1}

	events := []event.Event{
		{ID: 100, CompanyID: 1},
		{ID: 200, CompanyID: 2},
	}
	got, err := FilterEvents(ctx, svc, 1, user.RoleSupervisorRegional, events)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].ID)
}

func TestFilterEvents_EventScopedKeepsOnlyLinked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{100}

	events := []event.Event{
		{ID: 100, CompanyID: 1},
		{ID: 200, CompanyID: 1},
	}
	got, err := FilterEvents(ctx, svc, 1, user.RoleMonitor, events)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].ID)
}

func TestFilterFinancials_EventScoped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{100}

	records := []financial.Payable{
		{ID: 1, EventID: ptr(100)},
		{ID: 2, EventID: ptr(200)},
	}
	got, err := FilterFinancials(ctx, svc, 1, user.RoleOperadorCaixa, records)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterFinancials_CompanyScopedTransitiveVisibility(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, events := newFixture()
	links.companiesByUser[1] = []int64{1}
	events.byCompany[1] = []int64{100}
	events.byCompany[2] = []int64{200}

	// No direct user↔event link exists, visibility flows company → event.
	records := []financial.Receivable{
		{ID: 1, EventID: ptr(100)},
		{ID: 2, EventID: ptr(200)},
	}
	got, err := FilterFinancials(ctx, svc, 1, user.RoleFinanceiroEmpresa, records)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterFinancials_NilEventRefExcludedForNonGlobal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{100}

	records := []financial.DailyRevenue{
		{ID: 1, EventID: ptr(100)},
		{ID: 2, EventID: nil},
	}
	got, err := FilterFinancials(ctx, svc, 1, user.RoleAuxiliarEvento, records)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Global roles see orphaned records too.
	gotAll, err := FilterFinancials(ctx, svc, 1, user.RoleAdministrador, records)
	require.NoError(t, err)
	assert.Len(t, gotAll, 2)
}

func TestFilterFinancials_SecondaryQueryErrorPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, events := newFixture()
	links.companiesByUser[1] = []int64{1}
	events.err = errors.New("query timeout")

	records := []financial.Payable{{ID: 1, EventID: ptr(100)}}
	_, err := FilterFinancials(ctx, svc, 1, user.RoleGerenteRegional, records)
	assert.Error(t, err)

	// Event-scoped roles never hit the secondary query.
	links.eventsByUser[2] = []int64{100}
	got, err := FilterFinancials(ctx, svc, 2, user.RoleLiderEvento, records)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFilters_PreserveOrderAndAreIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()
	links.eventsByUser[1] = []int64{300, 100, 500}

	events := []event.Event{
		{ID: 100, CompanyID: 1},
		{ID: 200, CompanyID: 1},
		{ID: 300, CompanyID: 1},
		{ID: 400, CompanyID: 1},
		{ID: 500, CompanyID: 1},
	}
	once, err := FilterEvents(ctx, svc, 1, user.RoleCoordenadorEvento, events)
	require.NoError(t, err)
	require.Len(t, once, 3)
	assert.Equal(t, int64(100), once[0].ID)
	assert.Equal(t, int64(300), once[1].ID)
	assert.Equal(t, int64(500), once[2].ID)

	twice, err := FilterEvents(ctx, svc, 1, user.RoleCoordenadorEvento, once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	// Input slice untouched.
	assert.Len(t, events, 5)
}

// Scenario: a regional manager linked to one company sees that company, its
// event and nothing belonging to a second, unlinked company.
func TestScenario_CompanyScopedUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, eventSrc := newFixture()

	c1 := company.Company{ID: 1, Name: "Produtora Alfa"}
	c2 := company.Company{ID: 2, Name: "Produtora Beta"}
	e1 := event.Event{ID: 100, CompanyID: 1, Name: "Festival de Verão"}
	e2 := event.Event{ID: 200, CompanyID: 2, Name: "Rodeio de Inverno"}

	links.companiesByUser[42] = []int64{1}
	eventSrc.byCompany[1] = []int64{100}
	eventSrc.byCompany[2] = []int64{200}

	const uid, role = int64(42), user.RoleGerenteRegional

	gotCompanies, err := FilterCompanies(ctx, svc, uid, role, []company.Company{c1, c2})
	require.NoError(t, err)
	require.Len(t, gotCompanies, 1)
	assert.Equal(t, c1.ID, gotCompanies[0].ID)

	gotEvents, err := FilterEvents(ctx, svc, uid, role, []event.Event{e1, e2})
	require.NoError(t, err)
	require.Len(t, gotEvents, 1)
	assert.Equal(t, e1.ID, gotEvents[0].ID)

	gotRecords, err := FilterFinancials(ctx, svc, uid, role, []financial.Payable{
		{ID: 1, EventID: ptr(100)},
		{ID: 2, EventID: ptr(200)},
	})
	require.NoError(t, err)
	require.Len(t, gotRecords, 1)
	assert.Equal(t, int64(1), gotRecords[0].ID)
}

// Scenario: an event leader linked to a single event sees that event and its
// records but no companies at all.
func TestScenario_EventScopedUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, links, _ := newFixture()

	links.eventsByUser[43] = []int64{100}

	const uid, role = int64(43), user.RoleLiderEvento

	gotCompanies, err := FilterCompanies(ctx, svc, uid, role, []company.Company{{ID: 1}})
	require.NoError(t, err)
	assert.Empty(t, gotCompanies)

	gotEvents, err := FilterEvents(ctx, svc, uid, role, []event.Event{
		{ID: 100, CompanyID: 1},
		{ID: 200, CompanyID: 1},
	})
	require.NoError(t, err)
	require.Len(t, gotEvents, 1)
	assert.Equal(t, int64(100), gotEvents[0].ID)

	gotRecords, err := FilterFinancials(ctx, svc, uid, role, []financial.DailyRevenue{
		{ID: 1, EventID: ptr(100)},
		{ID: 2, EventID: ptr(200)},
	})
	require.NoError(t, err)
	require.Len(t, gotRecords, 1)
	assert.Equal(t, int64(1), gotRecords[0].ID)
}
