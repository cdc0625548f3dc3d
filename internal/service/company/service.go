package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/company"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	authz *authz.Service
}

func NewCompanyService(companyRepository company.CompanyRepository, authzService *authz.Service) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepository,
		authz:             authzService,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context, userID int64, role user.Role) ([]company.Company, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return authz.FilterCompanies(ctx, c.authz, userID, role, companies)
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, userID int64, role user.Role, id int64) (company.Company, error) {
	companyData, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	if !c.authz.CanAccessCompany(ctx, userID, role, id) {
		return company.Company{}, company.ErrCompanyAccessDenied
	}
	return companyData, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, role user.Role, req company.CreateCompanyRequest) (company.Company, error) {
	if !user.HasGlobalAccess(role) {
		return company.Company{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	newCompany, err := c.CompanyRepository.Create(ctx, company.Company{
		Name:      req.Name,
		TradeName: req.TradeName,
		CNPJ:      req.CNPJ,
		City:      req.City,
		State:     req.State,
		Active:    true,
	})
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return newCompany, nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, role user.Role, id int64, req company.UpdateCompanyRequest) error {
	if !user.HasGlobalAccess(role) {
		return user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := c.CompanyRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, role user.Role, id int64) error {
	if !user.HasGlobalAccess(role) {
		return user.ErrInsufficientPermissions
	}
	return c.CompanyRepository.Delete(ctx, id)
}
