package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
)

// SettingsService handles per-user notification settings
type SettingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the user's settings, or an empty blob when nothing was saved yet
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.UserSettings{
				UserID:        userID,
				Notifications: datatypes.JSON([]byte("{}")),
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

// Update upserts the user's settings blob
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings := &domain.UserSettings{
		UserID:        userID,
		Notifications: req.Notifications,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
