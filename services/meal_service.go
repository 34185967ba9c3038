package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

// MealService is the append-only meal record store. Records get their id at
// first persistence and are never updated afterwards; the date and timestamp
// indexes back the day- and week-scoped queries.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// Create validates and persists a new record, assigning its identifier.
// The calendar date is always derived from the timestamp here so the two
// fields can never come from different sources.
func (s *MealService) Create(rec *models.MealRecord) (*models.MealRecord, error) {
	if rec.ID != 0 {
		return nil, fmt.Errorf("%w: record already has an id", utils.ErrValidation)
	}
	if rec.FoodName == "" {
		return nil, fmt.Errorf("%w: food_name is required", utils.ErrValidation)
	}
	if !rec.Guna.Valid() {
		return nil, fmt.Errorf("%w: unknown guna %q", utils.ErrValidation, rec.Guna)
	}
	if rec.Calories < 0 || rec.ProteinG < 0 || rec.CarbsG < 0 || rec.FatsG < 0 {
		return nil, fmt.Errorf("%w: nutrition values must be non-negative", utils.ErrValidation)
	}
	if rec.Timestamp <= 0 {
		return nil, fmt.Errorf("%w: timestamp is required", utils.ErrValidation)
	}
	if rec.MealContext != nil && !rec.MealContext.Valid() {
		return nil, fmt.Errorf("%w: unknown meal context %q", utils.ErrValidation, *rec.MealContext)
	}
	if rec.CookingMethod != nil && !rec.CookingMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown cooking method %q", utils.ErrValidation, *rec.CookingMethod)
	}

	rec.Date = models.DateOf(rec.Timestamp)

	if err := s.db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return rec, nil
}

// FetchAll returns the full history ordered by timestamp. An empty store
// yields an empty slice, never an error.
func (s *MealService) FetchAll() ([]models.MealRecord, error) {
	var meals []models.MealRecord
	if err := s.db.Order("timestamp ASC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return meals, nil
}

// ListByDate returns the records of a single local calendar day.
func (s *MealService) ListByDate(date string) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	if err := s.db.
		Where("date = ?", date).
		Order("timestamp ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return meals, nil
}

// ListByRange returns records with fromMs <= timestamp < toMs.
func (s *MealService) ListByRange(fromMs, toMs int64) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	if err := s.db.
		Where("timestamp >= ? AND timestamp < ?", fromMs, toMs).
		Order("timestamp ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return meals, nil
}

// Count returns the total number of logged meals.
func (s *MealService) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.MealRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	return n, nil
}
