package models

import "time"

// Sankalpa is the user's selected weekly behavioral intention.
type Sankalpa string

const (
	SankalpaIncreaseSattvic  Sankalpa = "increase-sattvic"
	SankalpaReduceRajasic    Sankalpa = "reduce-rajasic"
	SankalpaReduceTamasic    Sankalpa = "reduce-tamasic"
	SankalpaReduceLateEating Sankalpa = "reduce-late-eating"
)

func (s Sankalpa) Valid() bool {
	switch s {
	case SankalpaIncreaseSattvic, SankalpaReduceRajasic, SankalpaReduceTamasic, SankalpaReduceLateEating:
		return true
	}
	return false
}

// Settings holds the single user's preferences. One row, mutable at any time,
// no history kept.
type Settings struct {
	ID          uint     `gorm:"primaryKey" json:"-"`
	Dosha       Dosha    `gorm:"type:varchar(10);default:'Tridoshic'" json:"dosha"`
	Sankalpa    Sankalpa `gorm:"type:varchar(24);default:'increase-sattvic'" json:"sankalpa"`
	DigestEmail string   `json:"digest_email"`

	UpdatedAt time.Time `json:"-"`
}
