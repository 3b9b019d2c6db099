package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"site-analytics/internal/models"
	"site-analytics/internal/shared/filestorages"
)

const settingsKey = "settings/cloudflare.json"

//go:generate mockgen -source=settings_store.go -destination=./mocks/settings_store_mock.go -package=mocks
type SettingsStore interface {
	// Get returns the saved settings, or empty settings when nothing was saved yet.
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
	Delete(ctx context.Context) error
}

type settingsStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewSettingsStore(fileStorage filestorages.FileStorage) SettingsStore {
	return &settingsStore{fileStorage: fileStorage, key: settingsKey}
}

func (s *settingsStore) Get(ctx context.Context) (*models.Settings, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return &models.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &settings, nil
}

func (s *settingsStore) Save(ctx context.Context, settings *models.Settings) error {
	jsonData, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.fileStorage.Put(ctx, s.key, bytes.NewReader(jsonData)); err != nil {
		return fmt.Errorf("failed to put settings: %w", err)
	}
	return nil
}

func (s *settingsStore) Delete(ctx context.Context) error {
	if err := s.fileStorage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	return nil
}
