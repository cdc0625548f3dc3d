package event

import "time"

// Event is a cost center owned by exactly one company. Financial records hang
// off events, never off companies directly.
type Event struct {
	ID        int64
	CompanyID int64
	Name      string
	City      *string
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntityID implements the authz membership contract.
func (e Event) EntityID() int64 {
	return e.ID
}

// CompanyRef implements the authz company-ownership contract.
func (e Event) CompanyRef() int64 {
	return e.CompanyID
}
