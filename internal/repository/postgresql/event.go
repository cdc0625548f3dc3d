package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// List implements event.EventRepository.
func (e *eventRepositoryImpl) List(ctx context.Context) ([]event.Event, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, name, city, start_date, end_date, active, created_at, updated_at
		FROM events
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var found event.Event
		if err := rows.Scan(&found.ID, &found.CompanyID, &found.Name, &found.City, &found.StartDate, &found.EndDate, &found.Active, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, found)
	}
	return events, rows.Err()
}

// GetByID implements event.EventRepository.
func (e *eventRepositoryImpl) GetByID(ctx context.Context, id int64) (event.Event, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, name, city, start_date, end_date, active, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var found event.Event
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.CompanyID, &found.Name, &found.City, &found.StartDate, &found.EndDate, &found.Active, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return event.Event{}, err
	}
	return found, nil
}

// IDsByCompanies implements event.EventRepository.
func (e *eventRepositoryImpl) IDsByCompanies(ctx context.Context, companyIDs []int64) ([]int64, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id FROM events WHERE company_id = ANY($1)`, companyIDs)
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

// Create implements event.EventRepository.
func (e *eventRepositoryImpl) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO events (company_id, name, city, start_date, end_date, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, company_id, name, city, start_date, end_date, active, created_at, updated_at
	`

	var created event.Event
	err := q.QueryRow(ctx, query, newEvent.CompanyID, newEvent.Name, newEvent.City, newEvent.StartDate, newEvent.EndDate).
		Scan(&created.ID, &created.CompanyID, &created.Name, &created.City, &created.StartDate, &created.EndDate, &created.Active, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return event.Event{}, err
	}
	return created, nil
}

// Update implements event.EventRepository.
func (e *eventRepositoryImpl) Update(ctx context.Context, id int64, req event.UpdateEventRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for event update")
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

	sql := "UPDATE events SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update event with id %d: %w", id, err)
	}
	return nil
}

// Delete implements event.EventRepository.
func (e *eventRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
