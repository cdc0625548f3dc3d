package user

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// LinkRepository owns the user↔company and user↔event join tables. A link
// either exists or it doesn't; there is no temporal versioning.
type LinkRepository interface {
	CompanyIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	EventIDsByUser(ctx context.Context, userID int64) ([]int64, error)

	// ReplaceCompanyLinks and ReplaceEventLinks bulk-replace a user's links
	// (remove all, then re-add) and must run inside a transaction.
	ReplaceCompanyLinks(ctx context.Context, userID int64, companyIDs []int64) error
	ReplaceEventLinks(ctx context.Context, userID int64, eventIDs []int64) error
}
