// Package registry implements the shared catalogs: suppliers, clients and
// expense/revenue categories. Catalog rows are visible to every authenticated
// user; mutations are gated by role capability alone, there is no per-user
// scoping here.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/category"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/client"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/supplier"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type SupplierService interface {
	List(ctx context.Context) ([]supplier.Supplier, error)
	GetByID(ctx context.Context, id int64) (supplier.Supplier, error)
	Create(ctx context.Context, role user.Role, req supplier.UpsertSupplierRequest) (supplier.Supplier, error)
	Update(ctx context.Context, role user.Role, id int64, req supplier.UpsertSupplierRequest) error
	Delete(ctx context.Context, role user.Role, id int64) error
}

type ClientService interface {
	List(ctx context.Context) ([]client.Client, error)
	GetByID(ctx context.Context, id int64) (client.Client, error)
	Create(ctx context.Context, role user.Role, req client.UpsertClientRequest) (client.Client, error)
	Update(ctx context.Context, role user.Role, id int64, req client.UpsertClientRequest) error
	Delete(ctx context.Context, role user.Role, id int64) error
}

type CategoryService interface {
	List(ctx context.Context) ([]category.Category, error)
	GetByID(ctx context.Context, id int64) (category.Category, error)
	Create(ctx context.Context, role user.Role, req category.UpsertCategoryRequest) (category.Category, error)
	Update(ctx context.Context, role user.Role, id int64, req category.UpsertCategoryRequest) error
	Delete(ctx context.Context, role user.Role, id int64) error
}

type SupplierServiceImpl struct {
	supplier.SupplierRepository
}

func NewSupplierService(repo supplier.SupplierRepository) SupplierService {
	return &SupplierServiceImpl{SupplierRepository: repo}
}

// GetByID implements SupplierService.
func (s *SupplierServiceImpl) GetByID(ctx context.Context, id int64) (supplier.Supplier, error) {
	data, err := s.SupplierRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return supplier.Supplier{}, supplier.ErrSupplierNotFound
		}
		return supplier.Supplier{}, fmt.Errorf("failed to get supplier by ID: %w", err)
	}
	return data, nil
}

// Create implements SupplierService.
func (s *SupplierServiceImpl) Create(ctx context.Context, role user.Role, req supplier.UpsertSupplierRequest) (supplier.Supplier, error) {
	if !user.CanManageFinancials(role) {
		return supplier.Supplier{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return supplier.Supplier{}, err
	}

	created, err := s.SupplierRepository.Create(ctx, supplier.Supplier{
		Name:   req.Name,
		CNPJ:   req.CNPJ,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: true,
	})
	if err != nil {
		return supplier.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}
	return created, nil
}

// Update implements SupplierService.
func (s *SupplierServiceImpl) Update(ctx context.Context, role user.Role, id int64, req supplier.UpsertSupplierRequest) error {
	if !user.CanManageFinancials(role) {
		return user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.SupplierRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return supplier.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

// Delete implements SupplierService.
func (s *SupplierServiceImpl) Delete(ctx context.Context, role user.Role, id int64) error {
	if !user.CanManageFinancials(role) {
		return user.ErrInsufficientPermissions
	}
	return s.SupplierRepository.Delete(ctx, id)
}

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(repo client.ClientRepository) ClientService {
	return &ClientServiceImpl{ClientRepository: repo}
}

// GetByID implements ClientService.
func (c *ClientServiceImpl) GetByID(ctx context.Context, id int64) (client.Client, error) {
	data, err := c.ClientRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return data, nil
}

// Create implements ClientService.
func (c *ClientServiceImpl) Create(ctx context.Context, role user.Role, req client.UpsertClientRequest) (client.Client, error) {
	if !user.CanManageFinancials(role) {
		return client.Client{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	created, err := c.ClientRepository.Create(ctx, client.Client{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Active:   true,
	})
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return created, nil
}

// Update implements ClientService.
func (c *ClientServiceImpl) Update(ctx context.Context, role user.Role, id int64, req client.UpsertClientRequest) error {
	if !user.CanManageFinancials(role) {
		return user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := c.ClientRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// Delete implements ClientService.
func (c *ClientServiceImpl) Delete(ctx context.Context, role user.Role, id int64) error {
	if !user.CanManageFinancials(role) {
		return user.ErrInsufficientPermissions
	}
	return c.ClientRepository.Delete(ctx, id)
}

type CategoryServiceImpl struct {
	category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{CategoryRepository: repo}
}

// GetByID implements CategoryService.
func (c *CategoryServiceImpl) GetByID(ctx context.Context, id int64) (category.Category, error) {
	data, err := c.CategoryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return data, nil
}

// Create implements CategoryService.
func (c *CategoryServiceImpl) Create(ctx context.Context, role user.Role, req category.UpsertCategoryRequest) (category.Category, error) {
	if !user.CanManageCategories(role) {
		return category.Category{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return category.Category{}, err
	}

	created, err := c.CategoryRepository.Create(ctx, category.Category{
		Name: req.Name,
		Kind: req.Kind,
	})
	if err != nil {
		return category.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// Update implements CategoryService.
func (c *CategoryServiceImpl) Update(ctx context.Context, role user.Role, id int64, req category.UpsertCategoryRequest) error {
	if !user.CanManageCategories(role) {
		return user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := c.CategoryRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete implements CategoryService.
func (c *CategoryServiceImpl) Delete(ctx context.Context, role user.Role, id int64) error {
	if !user.CanManageCategories(role) {
		return user.ErrInsufficientPermissions
	}
	return c.CategoryRepository.Delete(ctx, id)
}
