package ports

import (
	"context"

	"github.com/userhub/user-auth-api/internal/core/domain"
)

// RegisterInput is the data required to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ProfileUpdateInput is a partial profile change; nil fields are untouched.
type ProfileUpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserPage is one page of an administrative user listing.
type UserPage struct {
	Users   []*domain.User
	Current int
	Pages   int
	Total   int64
}

// UserService implements the account operations exposed over HTTP.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ListUsers(ctx context.Context, page, limit int) (*UserPage, error)
	DeleteAccount(ctx context.Context, userID string) error
}
