package ports

import (
	"context"

	"github.com/userhub/user-auth-api/internal/core/domain"
)

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines the persistence interface for user accounts.
// Implementations translate storage-level duplicate-key failures into
// domain.ErrEmailTaken, missing documents into domain.ErrUserNotFound and
// malformed identifiers into domain.ErrInvalidID.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
}
