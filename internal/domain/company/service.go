package company

import (
	"context"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type CompanyService interface {
	// List returns only the companies the caller is entitled to see.
	List(ctx context.Context, userID int64, role user.Role) ([]Company, error)
	GetByID(ctx context.Context, userID int64, role user.Role, id int64) (Company, error)

	// Mutations are reserved for global roles.
	Create(ctx context.Context, role user.Role, req CreateCompanyRequest) (Company, error)
	Update(ctx context.Context, role user.Role, id int64, req UpdateCompanyRequest) error
	Delete(ctx context.Context, role user.Role, id int64) error
}
