package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/client"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

// List implements client.ClientRepository.
func (c *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, document, email, phone, active, created_at, updated_at
		FROM clients
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var found client.Client
		if err := rows.Scan(&found.ID, &found.Name, &found.Document, &found.Email, &found.Phone, &found.Active, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, found)
	}
	return clients, rows.Err()
}

// GetByID implements client.ClientRepository.
func (c *clientRepositoryImpl) GetByID(ctx context.Context, id int64) (client.Client, error) {
	q := GetQuerier(ctx, c.db)

	var found client.Client
	err := q.QueryRow(ctx, `
		SELECT id, name, document, email, phone, active, created_at, updated_at
		FROM clients
		WHERE id = $1
	`, id).Scan(&found.ID, &found.Name, &found.Document, &found.Email, &found.Phone, &found.Active, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return client.Client{}, err
	}
	return found, nil
}

// Create implements client.ClientRepository.
func (c *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, c.db)

	var created client.Client
	err := q.QueryRow(ctx, `
		INSERT INTO clients (name, document, email, phone, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, name, document, email, phone, active, created_at, updated_at
	`, newClient.Name, newClient.Document, newClient.Email, newClient.Phone).
		Scan(&created.ID, &created.Name, &created.Document, &created.Email, &created.Phone, &created.Active, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return client.Client{}, err
	}
	return created, nil
}

// Update implements client.ClientRepository.
func (c *clientRepositoryImpl) Update(ctx context.Context, id int64, req client.UpsertClientRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := map[string]interface{}{
		"name":       req.Name,
		"document":   req.Document,
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

	sql := "UPDATE clients SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update client with id %d: %w", id, err)
	}
	return nil
}

// Delete implements client.ClientRepository.
func (c *clientRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}
