package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
)

type PlatformService interface {
	List(ctx context.Context, ownerID string) ([]*models.Platform, error)
	Connect(ctx context.Context, ownerID, platformID string) (*models.Platform, error)
	Disconnect(ctx context.Context, ownerID, platformID string) (*models.Platform, error)
}

type platformService struct {
	platforms store.PlatformStore
}

func NewPlatformService(platforms store.PlatformStore) PlatformService {
	return &platformService{platforms: platforms}
}

func (s *platformService) List(ctx context.Context, ownerID string) ([]*models.Platform, error) {
	platforms, err := s.platforms.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing platforms: %w", err)
	}
	return platforms, nil
}

func (s *platformService) Connect(ctx context.Context, ownerID, platformID string) (*models.Platform, error) {
	platform, err := s.platforms.SetConnected(ctx, ownerID, platformID, true)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return platform, nil
}

func (s *platformService) Disconnect(ctx context.Context, ownerID, platformID string) (*models.Platform, error) {
	platform, err := s.platforms.SetConnected(ctx, ownerID, platformID, false)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return platform, nil
}
