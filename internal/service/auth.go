package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	RecordLogin(ctx context.Context, id uint, at time.Time) error
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthService struct {
	repo     AuthUserRepository
	denylist TokenDenylist
}

func NewAuthService(repo AuthUserRepository, denylist TokenDenylist) *AuthService {
	return &AuthService{
		repo:     repo,
		denylist: denylist,
	}
}

func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash
	if user.Role == "" {
		user.Role = domain.RoleSupport
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	now := time.Now().UTC()
	if err = s.repo.RecordLogin(ctx, user.ID, now); err != nil {
		zap.L().Warn("failed to record login", zap.Uint("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

// Logout revokes the token id for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string, remaining time.Duration) error {
	if err := s.denylist.Revoke(ctx, tokenID, remaining); err != nil {
		return fmt.Errorf("s.denylist.Revoke -> %w", err)
	}

	return nil
}

func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.denylist.IsRevoked(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("s.denylist.IsRevoked -> %w", err)
	}

	return revoked, nil
}

// EnsureSuperAdmin creates the bootstrap account on first start. An existing
// account with the same email is left untouched.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if _, err = s.Signup(ctx, domain.User{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     domain.RoleSuperAdmin,
	}); err != nil {
		return err
	}
	zap.L().Info("bootstrap super admin created", zap.String("email", email))

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}
