package postgresql

import (
	"context"
	"fmt"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

// linkRepositoryImpl owns the user_companies and user_events join tables that
// back the entitlement lookups.
type linkRepositoryImpl struct {
	db *database.DB
}

func NewLinkRepository(db *database.DB) user.LinkRepository {
	return &linkRepositoryImpl{db: db}
}

// CompanyIDsByUser implements user.LinkRepository.
func (l *linkRepositoryImpl) CompanyIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return l.idsByUser(ctx, "user_companies", "company_id", userID)
}

// EventIDsByUser implements user.LinkRepository.
func (l *linkRepositoryImpl) EventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return l.idsByUser(ctx, "user_events", "event_id", userID)
}

func (l *linkRepositoryImpl) idsByUser(ctx context.Context, table, column string, userID int64) ([]int64, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1`, column, table), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceCompanyLinks implements user.LinkRepository. Remove-all-then-re-add;
// callers wrap it in WithTransaction together with the user update.
func (l *linkRepositoryImpl) ReplaceCompanyLinks(ctx context.Context, userID int64, companyIDs []int64) error {
	return l.replaceLinks(ctx, "user_companies", "company_id", userID, companyIDs)
}

// ReplaceEventLinks implements user.LinkRepository.
func (l *linkRepositoryImpl) ReplaceEventLinks(ctx context.Context, userID int64, eventIDs []int64) error {
	return l.replaceLinks(ctx, "user_events", "event_id", userID, eventIDs)
}

func (l *linkRepositoryImpl) replaceLinks(ctx context.Context, table, column string, userID int64, ids []int64) error {
	q := GetQuerier(ctx, l.db)

	if _, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table), userID); err != nil {
		return fmt.Errorf("failed to clear %s for user %d: %w", table, userID, err)
	}
	for _, id := range ids {
		if _, err := q.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (user_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, column), userID, id); err != nil {
			return fmt.Errorf("failed to insert %s link for user %d: %w", table, userID, err)
		}
	}
	return nil
}
