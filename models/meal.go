package models

import "time"

// Guna is the Vedic classification assigned to a meal by the AI gateway.
type Guna string

const (
	GunaSattvic Guna = "Sattvic"
	GunaRajasic Guna = "Rajasic"
	GunaTamasic Guna = "Tamasic"
)

func (g Guna) Valid() bool {
	switch g {
	case GunaSattvic, GunaRajasic, GunaTamasic:
		return true
	}
	return false
}

// MealContext tags where/how a meal was obtained.
type MealContext string

const (
	ContextPrasadam   MealContext = "Prasadam"
	ContextHomeCooked MealContext = "Home-cooked"
	ContextOutside    MealContext = "Outside"
)

func (c MealContext) Valid() bool {
	switch c {
	case ContextPrasadam, ContextHomeCooked, ContextOutside:
		return true
	}
	return false
}

// CookingMethod is the primary preparation method detected by the classifier.
type CookingMethod string

const (
	MethodFried   CookingMethod = "Fried"
	MethodSteamed CookingMethod = "Steamed"
	MethodRoasted CookingMethod = "Roasted"
	MethodRaw     CookingMethod = "Raw"
	MethodOther   CookingMethod = "Other"
)

func (m CookingMethod) Valid() bool {
	switch m {
	case MethodFried, MethodSteamed, MethodRoasted, MethodRaw, MethodOther:
		return true
	}
	return false
}

// Dosha is the user's constitutional profile. It only contextualizes the
// advisory text the classifier returns; aggregation never reads it.
type Dosha string

const (
	DoshaVata      Dosha = "Vata"
	DoshaPitta     Dosha = "Pitta"
	DoshaKapha     Dosha = "Kapha"
	DoshaTridoshic Dosha = "Tridoshic"
)

func (d Dosha) Valid() bool {
	switch d {
	case DoshaVata, DoshaPitta, DoshaKapha, DoshaTridoshic:
		return true
	}
	return false
}

// MealRecord is one logged eating event. Records are append-only: the id is
// assigned at first persistence and the row is never updated afterwards.
//
// Date always holds the local calendar date of Timestamp; the store derives it
// at creation so the two can never drift apart. Optional advisory fields are
// pointers so an omitted field is distinguishable from an empty string.
type MealRecord struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FoodName  string  `gorm:"not null" json:"food_name"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatsG     float64 `json:"fats_g"`
	Guna      Guna    `gorm:"type:varchar(10);not null" json:"guna"`
	VedicTip  string  `gorm:"type:text" json:"vedic_tip"`
	Timestamp int64   `gorm:"index;not null" json:"timestamp"`                // ms since epoch
	Date      string  `gorm:"type:varchar(10);index;not null" json:"date"`    // YYYY-MM-DD, local

	ImageURL    *string      `json:"image_url,omitempty"`
	MealContext *MealContext `gorm:"type:varchar(16)" json:"meal_context,omitempty"`

	DoshaSuggestion      *string        `gorm:"type:text" json:"dosha_suggestion,omitempty"`
	TimeOfDayWisdom      *string        `gorm:"type:text" json:"time_of_day_wisdom,omitempty"`
	IngredientBreakdown  *string        `gorm:"type:text" json:"ingredient_breakdown,omitempty"`
	PortionAwareness     *string        `gorm:"type:text" json:"portion_awareness,omitempty"`
	SeasonalAwareness    *string        `gorm:"type:text" json:"seasonal_awareness,omitempty"`
	CookingMethod        *CookingMethod `gorm:"type:varchar(10)" json:"cooking_method,omitempty"`
	CookingMethodInsight *string        `gorm:"type:text" json:"cooking_method_insight,omitempty"`

	CreatedAt time.Time `json:"-"`
}

func (MealRecord) TableName() string { return "daily_meals" }

// LocalTime is the record's creation time in the local time zone.
func (m *MealRecord) LocalTime() time.Time { return time.UnixMilli(m.Timestamp) }

// DateOf converts a millisecond timestamp to its local YYYY-MM-DD calendar date.
func DateOf(timestampMs int64) string {
	return time.UnixMilli(timestampMs).Format("2006-01-02")
}
