package dto

import (
	"time"

	blotterModel "brms_backend/internals/features/blotters/model"
)

type CreateBlotterRequest struct {
	CaseTitle      string `json:"caseTitle" form:"caseTitle" validate:"required,max=180"`
	CaseType       string `json:"caseType" form:"caseType" validate:"max=50"`
	Details        string `json:"details" form:"details" validate:"required"`
	Location       string `json:"location" form:"location" validate:"max=120"`
	RespondentName string `json:"respondentName" form:"respondentName" validate:"max=120"`
	HearingDate    string `json:"hearingDate" form:"hearingDate"`
	ReportedByID   *uint  `json:"reportedById" form:"reportedById"`
}

type UpdateBlotterStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

type BlotterResponse struct {
	ID             uint           `json:"id"`
	CaseTitle      string         `json:"case_title"`
	CaseType       string         `json:"case_type,omitempty"`
	Details        string         `json:"details"`
	Status         string         `json:"status"`
	Location       string         `json:"location,omitempty"`
	RespondentName string         `json:"respondent_name,omitempty"`
	ReportedAt     string         `json:"reported_at"`
	HearingDate    *string        `json:"hearing_date,omitempty"`
	ReportedBy     *ReporterBrief `json:"reported_by,omitempty"`
}

type ReporterBrief struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewBlotterResponse(b *blotterModel.BlotterModel) BlotterResponse {
	resp := BlotterResponse{
		ID:         b.ID,
		CaseTitle:  b.CaseTitle,
		Details:    b.Details,
		Status:     b.Status,
		ReportedAt: b.ReportedAt.Format(time.RFC3339),
	}
	if b.CaseType != nil {
		resp.CaseType = *b.CaseType
	}
	if b.Location != nil {
		resp.Location = *b.Location
	}
	if b.RespondentName != nil {
		resp.RespondentName = *b.RespondentName
	}
	if b.HearingDate != nil {
		s := b.HearingDate.Format(time.RFC3339)
		resp.HearingDate = &s
	}
	if b.ReportedBy != nil {
		resp.ReportedBy = &ReporterBrief{
			FirstName: b.ReportedBy.FirstName,
			LastName:  b.ReportedBy.LastName,
		}
	}
	return resp
}
