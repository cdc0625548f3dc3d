package authz

import (
	"context"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

// Identifiable is anything filterable by its own id (companies).
type Identifiable interface {
	EntityID() int64
}

// CompanyOwned is anything owned by a company and filterable either by its
// own id or by its owner's id (events).
type CompanyOwned interface {
	Identifiable
	CompanyRef() int64
}

// EventOwned is anything owned by an event (payables, receivables, daily
// revenues). ok is false when the event reference is missing; such records
// are never visible to non-global roles.
type EventOwned interface {
	EventRef() (id int64, ok bool)
}

// FilterCompanies narrows companies down to the user's direct company
// entitlement. Event-scoped roles have no company entitlement and get an
// empty result; they navigate by event, not company. The input is never
// mutated and the relative order of survivors is preserved.
func FilterCompanies[T Identifiable](ctx context.Context, s *Service, userID int64, role user.Role, companies []T) ([]T, error) {
	if user.HasGlobalAccess(role) {
		return companies, nil
	}
	allowed := toSet(s.UserCompanyIDs(ctx, userID, role))
	out := make([]T, 0, len(companies))
	for _, c := range companies {
		if _, ok := allowed[c.EntityID()]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// FilterEvents narrows events to the user's entitlement. Company-scoped roles
// see every event under their companies, without needing a direct user↔event
// link; event-scoped roles see only explicitly linked events.
func FilterEvents[T CompanyOwned](ctx context.Context, s *Service, userID int64, role user.Role, events []T) ([]T, error) {
	if user.HasGlobalAccess(role) {
		return events, nil
	}

	if user.IsCompanyScoped(role) {
		allowed := toSet(s.UserCompanyIDs(ctx, userID, role))
		out := make([]T, 0, len(events))
		for _, e := range events {
			if _, ok := allowed[e.CompanyRef()]; ok {
				out = append(out, e)
			}
		}
		return out, nil
	}

	allowed := toSet(s.UserEventIDs(ctx, userID, role))
	out := make([]T, 0, len(events))
	for _, e := range events {
		if _, ok := allowed[e.EntityID()]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// FilterFinancials narrows financial records to the user's entitlement.
// Records carry only an event reference, so for company-scoped roles the
// company entitlement is first expanded to event ids with a secondary query;
// that query's error propagates rather than degrading. Records without an
// event reference are always excluded for non-global roles.
func FilterFinancials[T EventOwned](ctx context.Context, s *Service, userID int64, role user.Role, records []T) ([]T, error) {
	if user.HasGlobalAccess(role) {
		return records, nil
	}

	var allowed map[int64]struct{}
	if user.IsCompanyScoped(role) {
		companyIDs := s.UserCompanyIDs(ctx, userID, role)
		if len(companyIDs) == 0 {
			return make([]T, 0), nil
		}
		eventIDs, err := s.events.IDsByCompanies(ctx, companyIDs)
		if err != nil {
			return nil, err
		}
		allowed = toSet(eventIDs)
	} else {
		allowed = toSet(s.UserEventIDs(ctx, userID, role))
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		eventID, ok := r.EventRef()
		if !ok {
			continue
		}
		if _, ok := allowed[eventID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
