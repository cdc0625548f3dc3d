package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/supplier"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type supplierRepositoryImpl struct {
	db *database.DB
}

func NewSupplierRepository(db *database.DB) supplier.SupplierRepository {
	return &supplierRepositoryImpl{db: db}
}

// List implements supplier.SupplierRepository.
func (s *supplierRepositoryImpl) List(ctx context.Context) ([]supplier.Supplier, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, cnpj, email, phone, active, created_at, updated_at
		FROM suppliers
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []supplier.Supplier
	for rows.Next() {
		var found supplier.Supplier
		if err := rows.Scan(&found.ID, &found.Name, &found.CNPJ, &found.Email, &found.Phone, &found.Active, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, found)
	}
	return suppliers, rows.Err()
}

// GetByID implements supplier.SupplierRepository.
func (s *supplierRepositoryImpl) GetByID(ctx context.Context, id int64) (supplier.Supplier, error) {
	q := GetQuerier(ctx, s.db)

	var found supplier.Supplier
	err := q.QueryRow(ctx, `
		SELECT id, name, cnpj, email, phone, active, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`, id).Scan(&found.ID, &found.Name, &found.CNPJ, &found.Email, &found.Phone, &found.Active, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return supplier.Supplier{}, err
	}
	return found, nil
}

// Create implements supplier.SupplierRepository.
func (s *supplierRepositoryImpl) Create(ctx context.Context, newSupplier supplier.Supplier) (supplier.Supplier, error) {
	q := GetQuerier(ctx, s.db)

	var created supplier.Supplier
	err := q.QueryRow(ctx, `
		INSERT INTO suppliers (name, cnpj, email, phone, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, name, cnpj, email, phone, active, created_at, updated_at
	`, newSupplier.Name, newSupplier.CNPJ, newSupplier.Email, newSupplier.Phone).
		Scan(&created.ID, &created.Name, &created.CNPJ, &created.Email, &created.Phone, &created.Active, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return supplier.Supplier{}, err
	}
	return created, nil
}

// Update implements supplier.SupplierRepository.
func (s *supplierRepositoryImpl) Update(ctx context.Context, id int64, req supplier.UpsertSupplierRequest) error {
	q := GetQuerier(ctx, s.db)

	updates := map[string]interface{}{
		"name":       req.Name,
		"cnpj":       req.CNPJ,
		"email":      req.Email,
		"phone":      req.Phone,
		"updated_at": time.Now(),
	}

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE suppliers SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update supplier with id %d: %w", id, err)
	}
	return nil
}

// Delete implements supplier.SupplierRepository.
func (s *supplierRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return supplier.ErrSupplierNotFound
	}
	return nil
}
