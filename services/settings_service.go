package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

// SettingsService reads and writes the single preference row (dosha, active
// sankalpa, digest email).
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{db: db} }

// Get returns the settings row, creating it with defaults on first use.
func (s *SettingsService) Get() (*models.Settings, error) {
	settings := models.Settings{ID: 1}
	if err := s.db.
		Where("id = ?", 1).
		Attrs(models.Settings{Dosha: models.DoshaTridoshic, Sankalpa: models.SankalpaIncreaseSattvic}).
		FirstOrCreate(&settings).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return &settings, nil
}

// SettingsUpdate carries a partial update; nil fields are left untouched.
type SettingsUpdate struct {
	Dosha       *models.Dosha    `json:"dosha,omitempty"`
	Sankalpa    *models.Sankalpa `json:"sankalpa,omitempty"`
	DigestEmail *string          `json:"digest_email,omitempty"`
}

func (s *SettingsService) Update(u SettingsUpdate) (*models.Settings, error) {
	if u.Dosha != nil && !u.Dosha.Valid() {
		return nil, fmt.Errorf("%w: unknown dosha %q", utils.ErrValidation, *u.Dosha)
	}
	if u.Sankalpa != nil && !u.Sankalpa.Valid() {
		return nil, fmt.Errorf("%w: unknown sankalpa %q", utils.ErrValidation, *u.Sankalpa)
	}

	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if u.Dosha != nil {
		settings.Dosha = *u.Dosha
	}
	if u.Sankalpa != nil {
		settings.Sankalpa = *u.Sankalpa
	}
	if u.DigestEmail != nil {
		settings.DigestEmail = *u.DigestEmail
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return settings, nil
}
