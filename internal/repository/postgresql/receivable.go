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

type receivableRepositoryImpl struct {
	db *database.DB
}

func NewReceivableRepository(db *database.DB) financial.ReceivableRepository {
	return &receivableRepositoryImpl{db: db}
}

const receivableColumns = `id, event_id, client_id, category_id, description, amount, due_date, received_at, status, created_by, created_at, updated_at`

func scanReceivable(row interface{ Scan(...any) error }) (financial.Receivable, error) {
	var rec financial.Receivable
	err := row.Scan(&rec.ID, &rec.EventID, &rec.ClientID, &rec.CategoryID, &rec.Description, &rec.Amount, &rec.DueDate, &rec.ReceivedAt, &rec.Status, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// List implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) List(ctx context.Context) ([]financial.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+receivableColumns+` FROM accounts_receivable ORDER BY due_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receivables []financial.Receivable
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, err
		}
		receivables = append(receivables, rec)
	}
	return receivables, rows.Err()
}

// GetByID implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) GetByID(ctx context.Context, id int64) (financial.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	return scanReceivable(q.QueryRow(ctx, `SELECT `+receivableColumns+` FROM accounts_receivable WHERE id = $1`, id))
}

// Create implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) Create(ctx context.Context, rec financial.Receivable) (financial.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	return scanReceivable(q.QueryRow(ctx, `
		INSERT INTO accounts_receivable (event_id, client_id, category_id, description, amount, due_date, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+receivableColumns+`
	`, rec.EventID, rec.ClientID, rec.CategoryID, rec.Description, rec.Amount, rec.DueDate, rec.Status, rec.CreatedBy))
}

// Update implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) Update(ctx context.Context, id int64, req financial.UpdateReceivableRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
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

	sql := "UPDATE accounts_receivable SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update receivable with id %d: %w", id, err)
	}
	return nil
}

// SetStatus implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) SetStatus(ctx context.Context, id int64, status financial.Status, settledAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE accounts_receivable SET status = $1, received_at = $2, updated_at = NOW()
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

// Delete implements financial.ReceivableRepository.
func (r *receivableRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts_receivable WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return financial.ErrRecordNotFound
	}
	return nil
}
