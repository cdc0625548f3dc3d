package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type payableRepositoryImpl struct {
	db *database.DB
}

func NewPayableRepository(db *database.DB) financial.PayableRepository {
	return &payableRepositoryImpl{db: db}
}

const payableColumns = `id, event_id, supplier_id, category_id, description, amount, due_date, paid_at, status, created_by, created_at, updated_at`

func scanPayable(row interface{ Scan(...any) error }) (financial.Payable, error) {
	var p financial.Payable
	err := row.Scan(&p.ID, &p.EventID, &p.SupplierID, &p.CategoryID, &p.Description, &p.Amount, &p.DueDate, &p.PaidAt, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List implements financial.PayableRepository.
func (r *payableRepositoryImpl) List(ctx context.Context) ([]financial.Payable, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payableColumns+` FROM accounts_payable ORDER BY due_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payables []financial.Payable
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, err
		}
		payables = append(payables, p)
	}
	return payables, rows.Err()
}

// GetByID implements financial.PayableRepository.
func (r *payableRepositoryImpl) GetByID(ctx context.Context, id int64) (financial.Payable, error) {
	q := GetQuerier(ctx, r.db)

	return scanPayable(q.QueryRow(ctx, `SELECT `+payableColumns+` FROM accounts_payable WHERE id = $1`, id))
}

// Create implements financial.PayableRepository.
func (r *payableRepositoryImpl) Create(ctx context.Context, p financial.Payable) (financial.Payable, error) {
	q := GetQuerier(ctx, r.db)

	return scanPayable(q.QueryRow(ctx, `
		INSERT INTO accounts_payable (event_id, supplier_id, category_id, description, amount, due_date, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+payableColumns+`
	`, p.EventID, p.SupplierID, p.CategoryID, p.Description, p.Amount, p.DueDate, p.Status, p.CreatedBy))
}

// Update implements financial.PayableRepository.
func (r *payableRepositoryImpl) Update(ctx context.Context, id int64, req financial.UpdatePayableRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.SupplierID != nil {
		updates["supplier_id"] = *req.SupplierID
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return financial.ErrInvalidAmount
		}
		updates["amount"] = amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return fmt.Errorf("invalid due_date: %w", err)
		}
		updates["due_date"] = dueDate
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE accounts_payable SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update payable with id %d: %w", id, err)
	}
	return nil
}

// SetStatus implements financial.PayableRepository.
func (r *payableRepositoryImpl) SetStatus(ctx context.Context, id int64, status financial.Status, settledAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE accounts_payable SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
	`, status, settledAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return financial.ErrRecordNotFound
	}
	return nil
}

// Delete implements financial.PayableRepository.
func (r *payableRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts_payable WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return financial.ErrRecordNotFound
	}
	return nil
}
