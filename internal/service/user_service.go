package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
)

type UserService interface {
	UserInfo(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) UserInfo(ctx context.Context, userID string) (*models.User, error) {
	user, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = errors.New("user doesn't exist")
		slog.Info(err.Error())
		return nil, store.ErrNotFound
	}
	return user, nil
}
