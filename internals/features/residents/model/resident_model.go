package model

import (
	"time"

	"gorm.io/datatypes"
)

// ResidentModel maps the residents table. The (first_name, last_name,
// birth_date) triple is unique so the same person cannot be registered
// twice.
type ResidentModel struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	FirstName      string          `gorm:"size:80;not null;uniqueIndex:idx_residents_identity" json:"first_name"`
	MiddleName     *string         `gorm:"size:80" json:"middle_name,omitempty"`
	LastName       string          `gorm:"size:80;not null;uniqueIndex:idx_residents_identity" json:"last_name"`
	Alias          *string         `gorm:"size:80" json:"alias,omitempty"`
	PlaceOfBirth   *string         `gorm:"size:255" json:"place_of_birth,omitempty"`
	BirthDate      *datatypes.Date `gorm:"uniqueIndex:idx_residents_identity" json:"birth_date,omitempty"`
	CivilStatus    *string         `gorm:"size:20" json:"civil_status,omitempty"`
	Purok          *string         `gorm:"size:50" json:"purok,omitempty"`
	VotersStatus   *string         `gorm:"size:20" json:"voters_status,omitempty"`
	IdentifiedAs   *string         `gorm:"size:50" json:"identified_as,omitempty"`
	Email          *string         `gorm:"size:120" json:"email,omitempty"`
	Occupation     *string         `gorm:"size:120" json:"occupation,omitempty"`
	Citizenship    *string         `gorm:"size:50" json:"citizenship,omitempty"`
	ProfilePicture *string         `gorm:"size:255" json:"profile_picture,omitempty"`
	Sex            *string         `gorm:"size:10" json:"sex,omitempty"`
	Address        string          `gorm:"size:255;not null" json:"address"`
	ContactNumber  *string         `gorm:"size:20" json:"contact_number,omitempty"`
	Status         string          `gorm:"size:30;not null;default:'Active'" json:"status"`
	HouseholdID    *uint           `gorm:"index" json:"household_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ResidentModel) TableName() string {
	return "residents"
}

// AgeAt returns the resident's age in whole years as of the given day, or
// nil when no birth date is recorded.
func (r *ResidentModel) AgeAt(now time.Time) *int {
	if r.BirthDate == nil {
		return nil
	}
	birth := time.Time(*r.BirthDate)
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}
