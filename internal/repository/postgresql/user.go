package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, password_hash, role, active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).
		Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.Role, &found.Active, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, password_hash, role, active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.Role, &found.Active, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// List implements user.UserRepository.
func (u *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, role, active, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var found user.User
		if err := rows.Scan(&found.ID, &found.Name, &found.Email, &found.Role, &found.Active, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, found)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (name, email, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, role, active, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, newUser.Name, newUser.Email, newUser.PasswordHash, newUser.Role, newUser.Active).
		Scan(&created.ID, &created.Name, &created.Email, &created.Role, &created.Active, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// Update implements user.UserRepository.
func (u *userRepositoryImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, u.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
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

	sql := "UPDATE users SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update user with id %d: %w", id, err)
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (u *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (u *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
