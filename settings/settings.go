// Package settings persists the player's preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	VolumeIndex int  `json:"volumeIndex"`
	Muted       bool `json:"muted"`
	ShowMinimap bool `json:"showMinimap"`
	Fullscreen  bool `json:"fullscreen"`
}

// Defaults returns the settings used before anything has been saved.
func Defaults() SavedSettings {
	return SavedSettings{
		VolumeIndex: cfg.Settings.DefaultVolumeIndex,
		ShowMinimap: cfg.Settings.ShowMinimap,
		Fullscreen:  cfg.Settings.Fullscreen,
	}
}

// Volume returns the SFX volume in [0, 1], zero when muted.
func (s SavedSettings) Volume() float64 {
	if s.Muted || len(cfg.Settings.VolumeSteps) == 0 {
		return 0
	}
	i := min(max(s.VolumeIndex, 0), len(cfg.Settings.VolumeSteps)-1)
	return cfg.Settings.VolumeSteps[i]
}

// Storage is the key/value backend. *gdata.Manager satisfies it.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	storage Storage
	key     string
}

// Open opens the platform data directory for the game.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, key: cfg.Settings.StorageKey}
}

// Load returns the saved settings, or the defaults when nothing was saved or the
// saved data cannot be read. Failures are logged, not returned.
func (s *Store) Load() SavedSettings {
	if s == nil || s.storage == nil {
		return Defaults()
	}
	data, err := s.storage.LoadItem(s.key)
	if err != nil {
		logging.Log.Warnw("could not load settings", "err", err)
		return Defaults()
	}
	if data == nil {
		return Defaults()
	}

	saved := Defaults()
	if err := json.Unmarshal(data, &saved); err != nil {
		logging.Log.Warnw("could not parse saved settings", "err", err)
		return Defaults()
	}
	return saved
}

// Save writes settings to storage.
func (s *Store) Save(saved SavedSettings) error {
	if s == nil || s.storage == nil {
		return nil
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.storage.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
