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

type dailyRevenueRepositoryImpl struct {
	db *database.DB
}

func NewDailyRevenueRepository(db *database.DB) financial.DailyRevenueRepository {
	return &dailyRevenueRepositoryImpl{db: db}
}

const dailyRevenueColumns = `id, event_id, date, cash_amount, card_amount, pix_amount, notes, created_by, created_at, updated_at`

func scanDailyRevenue(row interface{ Scan(...any) error }) (financial.DailyRevenue, error) {
	var d financial.DailyRevenue
	err := row.Scan(&d.ID, &d.EventID, &d.Date, &d.CashAmount, &d.CardAmount, &d.PixAmount, &d.Notes, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// List implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) List(ctx context.Context) ([]financial.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+dailyRevenueColumns+` FROM daily_revenues ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenues []financial.DailyRevenue
	for rows.Next() {
		d, err := scanDailyRevenue(rows)
		if err != nil {
			return nil, err
		}
		revenues = append(revenues, d)
	}
	return revenues, rows.Err()
}

// GetByID implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) GetByID(ctx context.Context, id int64) (financial.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	return scanDailyRevenue(q.QueryRow(ctx, `SELECT `+dailyRevenueColumns+` FROM daily_revenues WHERE id = $1`, id))
}

// ExistsForEventDate implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) ExistsForEventDate(ctx context.Context, eventID int64, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM daily_revenues WHERE event_id = $1 AND date = $2)`, eventID, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) Create(ctx context.Context, d financial.DailyRevenue) (financial.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	return scanDailyRevenue(q.QueryRow(ctx, `
		INSERT INTO daily_revenues (event_id, date, cash_amount, card_amount, pix_amount, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+dailyRevenueColumns+`
	`, d.EventID, d.Date, d.CashAmount, d.CardAmount, d.PixAmount, d.Notes, d.CreatedBy))
}

// Update implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) Update(ctx context.Context, id int64, req financial.UpdateDailyRevenueRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	for col, val := range map[string]*string{
		"cash_amount": req.CashAmount,
		"card_amount": req.CardAmount,
		"pix_amount":  req.PixAmount,
	} {
		if val == nil {
			continue
		}
		amount, err := decimal.NewFromString(*val)
		if err != nil {
			return financial.ErrInvalidAmount
		}
		updates[col] = amount
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
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

	sql := "UPDATE daily_revenues SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update daily revenue with id %d: %w", id, err)
	}
	return nil
}

// Delete implements financial.DailyRevenueRepository.
func (r *dailyRevenueRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_revenues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return financial.ErrRecordNotFound
	}
	return nil
}
