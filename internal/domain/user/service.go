package user

import "context"

// UserService is the admin surface for managing system users and their
// company/event permission links. Every method requires CanManageUsers;
// handlers gate on it too, but the service re-checks so it cannot be bypassed.
type UserService interface {
	List(ctx context.Context, actorRole Role) ([]User, error)
	GetByID(ctx context.Context, actorRole Role, id int64) (User, error)
	Create(ctx context.Context, actorRole Role, req CreateUserRequest) (User, error)
	Update(ctx context.Context, actorRole Role, id int64, req UpdateUserRequest) error
	Delete(ctx context.Context, actorRole Role, id int64) error
}
