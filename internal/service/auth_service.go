package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
)

// AuthService is a demo identity provider: any credential pair signs in and
// creates the account on first use. Its only real job is handing the
// session layer a stable owner id per email.
type AuthService interface {
	Login(ctx context.Context, email, name string) (*models.User, error)
}

type authService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, email, name string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		err := errors.New("email must not be empty")
		slog.Info(err.Error())
		return nil, err
	}

	user, exists, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return user, nil
	}

	if name == "" {
		name = "Demo User"
	}

	now := time.Now()
	user = &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
