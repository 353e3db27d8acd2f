package service

import (
	"context"
	"errors"
	"time"

	"github.com/userhub/user-auth-api/internal/core/domain"
	"github.com/userhub/user-auth-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// UserService implements account registration, authentication and profile
// management on top of a UserRepository and a TokenService.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new account and returns it with a freshly issued token.
// The uniqueness of the email is enforced by the store's unique index, so a
// concurrent registration of the same address fails with domain.ErrEmailTaken
// even when both requests pass any earlier check.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID: created.ID,
		Email:  created.Email,
		Role:   created.Role,
	})
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.TouchLastLogin(ctx, created.ID); err != nil {
		return nil, "", err
	}
	login := time.Now().UTC()
	created.LastLoginAt = &login

	return created, token, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password both yield domain.ErrInvalidCredentials so the response does not
// reveal which check failed; a deactivated account is reported distinctly.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", domain.ErrAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, "", err
	}
	login := time.Now().UTC()
	user.LastLoginAt = &login

	return user, token, nil
}

// GetProfile returns the account identified by userID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies a partial change to name and email fields. An email
// change that collides with another account fails with domain.ErrEmailTaken.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileUpdateInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if in.Email != nil {
		normalized := domain.NormalizeEmail(*in.Email)
		update.Email = &normalized
	}
	return s.repo.Update(ctx, userID, update)
}

// ChangePassword replaces the stored hash after verifying the current
// password. The stored hash is untouched when verification fails.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.VerifyPassword(currentPassword) {
		return domain.ErrWrongPassword
	}

	hash, err := domain.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, userID, ports.UserUpdate{PasswordHash: &hash})
	return err
}

// ListUsers returns one page of accounts ordered newest first, with the true
// total and derived page count.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.UserPage{
		Users:   users,
		Current: page,
		Pages:   pages,
		Total:   total,
	}, nil
}

// DeleteAccount permanently removes the account. There is no soft delete.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
