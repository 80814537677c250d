package model

import (
	"time"

	residentModel "brms_backend/internals/features/residents/model"
)

// Blotter case statuses enforced at the application boundary. The column
// itself stays a free-form string, matching the recorded ledger practice of
// ad-hoc statuses.
const (
	BlotterStatusOpen     = "Open"
	BlotterStatusResolved = "Resolved"
)

type BlotterModel struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	CaseTitle      string     `gorm:"size:180;not null" json:"case_title"`
	CaseType       *string    `gorm:"size:50" json:"case_type,omitempty"`
	Details        string     `gorm:"type:text" json:"details"`
	Status         string     `gorm:"size:30;not null;default:'Open'" json:"status"`
	Location       *string    `gorm:"size:120" json:"location,omitempty"`
	RespondentName *string    `gorm:"size:120" json:"respondent_name,omitempty"`
	ReportedAt     time.Time  `gorm:"not null;autoCreateTime" json:"reported_at"`
	HearingDate    *time.Time `json:"hearing_date,omitempty"`
	ReportedByID   *uint      `gorm:"index" json:"reported_by_id,omitempty"`

	ReportedBy *residentModel.ResidentModel `gorm:"foreignKey:ReportedByID" json:"reported_by,omitempty"`
}

func (BlotterModel) TableName() string {
	return "blotters"
}
