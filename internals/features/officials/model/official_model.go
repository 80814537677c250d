package model

import (
	"gorm.io/datatypes"
)

type OfficialModel struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	FullName  string          `gorm:"size:120;not null" json:"full_name"`
	Position  string          `gorm:"size:80;not null" json:"position"`
	TermStart *datatypes.Date `json:"term_start,omitempty"`
	TermEnd   *datatypes.Date `json:"term_end,omitempty"`
	Status    string          `gorm:"size:30;not null;default:'Active'" json:"status"`
}

func (OfficialModel) TableName() string {
	return "officials"
}
