// Package authz implements role-based data scoping: resolving which companies
// and events a user is entitled to see, and narrowing fetched collections down
// to that entitlement. Permission to perform an action is decided by the
// capability predicates in the user domain; this package only decides which
// rows are visible.
package authz

import (
	"context"
	"log/slog"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

// LinkSource resolves the user↔company and user↔event join tables.
type LinkSource interface {
	CompanyIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	EventIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

// EventSource expands company ids to the ids of their events.
type EventSource interface {
	IDsByCompanies(ctx context.Context, companyIDs []int64) ([]int64, error)
}

type Service struct {
	links  LinkSource
	events EventSource
}

func NewService(links LinkSource, events EventSource) *Service {
	return &Service{links: links, events: events}
}

// UserCompanyIDs returns the company ids the user is explicitly linked to.
// Global roles bypass the lookup and get an empty set; callers must check
// user.HasGlobalAccess before treating an empty result as "no access".
// A storage failure also degrades to an empty set, so a non-global user loses
// access during an outage instead of gaining it.
func (s *Service) UserCompanyIDs(ctx context.Context, userID int64, role user.Role) []int64 {
	if user.HasGlobalAccess(role) {
		return nil
	}
	ids, err := s.links.CompanyIDsByUser(ctx, userID)
	if err != nil {
		slog.Warn("company entitlement lookup failed, denying access", "user_id", userID, "error", err)
		return nil
	}
	return ids
}

// UserEventIDs is the event-side counterpart of UserCompanyIDs, with the same
// empty-set convention for global roles and storage failures.
func (s *Service) UserEventIDs(ctx context.Context, userID int64, role user.Role) []int64 {
	if user.HasGlobalAccess(role) {
		return nil
	}
	ids, err := s.links.EventIDsByUser(ctx, userID)
	if err != nil {
		slog.Warn("event entitlement lookup failed, denying access", "user_id", userID, "error", err)
		return nil
	}
	return ids
}

// CanAccessCompany reports whether the user may read the given company.
func (s *Service) CanAccessCompany(ctx context.Context, userID int64, role user.Role, companyID int64) bool {
	if user.HasGlobalAccess(role) {
		return true
	}
	for _, id := range s.UserCompanyIDs(ctx, userID, role) {
		if id == companyID {
			return true
		}
	}
	return false
}

// CanAccessEvent reports whether the user may read the given event. Company-
// scoped users reach events through their companies, so the event's owning
// company is checked as well.
func (s *Service) CanAccessEvent(ctx context.Context, userID int64, role user.Role, eventID int64, eventCompanyID int64) bool {
	if user.HasGlobalAccess(role) {
		return true
	}
	if user.IsCompanyScoped(role) {
		return s.CanAccessCompany(ctx, userID, role, eventCompanyID)
	}
	for _, id := range s.UserEventIDs(ctx, userID, role) {
		if id == eventID {
			return true
		}
	}
	return false
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
