package model

import (
	"time"

	residentModel "brms_backend/internals/features/residents/model"
)

type HouseholdModel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HeadName      string    `gorm:"size:120;not null" json:"head_name"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	Purok         *string   `gorm:"size:50" json:"purok,omitempty"`
	ContactNumber *string   `gorm:"size:20" json:"contact_number,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Residents are removed together with their household.
	Residents []residentModel.ResidentModel `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE" json:"residents,omitempty"`
}

func (HouseholdModel) TableName() string {
	return "households"
}
