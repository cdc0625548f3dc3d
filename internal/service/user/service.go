package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
	"github.com/eventosfin/financeiro-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	links user.LinkRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository, linkRepository user.LinkRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		links:          linkRepository,
	}
}

// List implements user.UserService.
func (u *UserServiceImpl) List(ctx context.Context, actorRole user.Role) ([]user.User, error) {
	if !user.CanManageUsers(actorRole) {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := u.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if err := u.loadLinks(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// GetByID implements user.UserService.
func (u *UserServiceImpl) GetByID(ctx context.Context, actorRole user.Role, id int64) (user.User, error) {
	if !user.CanManageUsers(actorRole) {
		return user.User{}, user.ErrAdminPrivilegeRequired
	}

	userData, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if err := u.loadLinks(ctx, &userData); err != nil {
		return user.User{}, err
	}
	return userData, nil
}

// Create implements user.UserService. The user row and its permission links
// are written in one transaction so a half-created user never exists.
func (u *UserServiceImpl) Create(ctx context.Context, actorRole user.Role, req user.CreateUserRequest) (user.User, error) {
	if !user.CanManageUsers(actorRole) {
		return user.User{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := u.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, user.ErrUserEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hashed)

	var created user.User
	err = postgresql.WithTransaction(ctx, u.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = u.UserRepository.Create(txCtx, user.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         user.Role(req.Role),
			Active:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if err := u.links.ReplaceCompanyLinks(txCtx, created.ID, req.CompanyIDs); err != nil {
			return fmt.Errorf("failed to set company links: %w", err)
		}
		if err := u.links.ReplaceEventLinks(txCtx, created.ID, req.EventIDs); err != nil {
			return fmt.Errorf("failed to set event links: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	created.CompanyIDs = req.CompanyIDs
	created.EventIDs = req.EventIDs
	return created, nil
}

// Update implements user.UserService. Link lists, when present, are replaced
// wholesale inside the same transaction as the row update.
func (u *UserServiceImpl) Update(ctx context.Context, actorRole user.Role, id int64, req user.UpdateUserRequest) error {
	if !user.CanManageUsers(actorRole) {
		return user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := u.UserRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user by ID: %w", err)
	}

	return postgresql.WithTransaction(ctx, u.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := u.UserRepository.Update(txCtx, id, req); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if req.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := u.UserRepository.UpdatePassword(txCtx, id, string(hashed)); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}
		}
		if req.CompanyIDs != nil {
			if err := u.links.ReplaceCompanyLinks(txCtx, id, *req.CompanyIDs); err != nil {
				return fmt.Errorf("failed to replace company links: %w", err)
			}
		}
		if req.EventIDs != nil {
			if err := u.links.ReplaceEventLinks(txCtx, id, *req.EventIDs); err != nil {
				return fmt.Errorf("failed to replace event links: %w", err)
			}
		}
		return nil
	})
}

// Delete implements user.UserService.
func (u *UserServiceImpl) Delete(ctx context.Context, actorRole user.Role, id int64) error {
	if !user.CanManageUsers(actorRole) {
		return user.ErrAdminPrivilegeRequired
	}
	return u.UserRepository.Delete(ctx, id)
}

func (u *UserServiceImpl) loadLinks(ctx context.Context, userData *user.User) error {
	companyIDs, err := u.links.CompanyIDsByUser(ctx, userData.ID)
	if err != nil {
		return fmt.Errorf("failed to load company links: %w", err)
	}
	eventIDs, err := u.links.EventIDsByUser(ctx, userData.ID)
	if err != nil {
		return fmt.Errorf("failed to load event links: %w", err)
	}
	userData.CompanyIDs = companyIDs
	userData.EventIDs = eventIDs
	return nil
}
