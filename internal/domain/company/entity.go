package company

import "time"

type Company struct {
	ID        int64
	Name      string
	TradeName *string
	CNPJ      *string
	City      *string
	State     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntityID implements the authz membership contract.
func (c Company) EntityID() int64 {
	return c.ID
}
