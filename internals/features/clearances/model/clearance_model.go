package model

import (
	"time"

	residentModel "brms_backend/internals/features/residents/model"
)

const (
	ClearanceStatusPending = "Pending"
	ClearanceStatusIssued  = "Issued"
)

type ClearanceModel struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ClearanceType string     `gorm:"size:80;not null" json:"clearance_type"`
	Purpose       string     `gorm:"size:180" json:"purpose"`
	Status        string     `gorm:"size:30;not null;default:'Pending'" json:"status"`
	ControlNo     *string    `gorm:"size:64;uniqueIndex" json:"control_no,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ResidentID    uint       `gorm:"not null;index" json:"resident_id"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Resident *residentModel.ResidentModel `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}

func (ClearanceModel) TableName() string {
	return "clearances"
}
