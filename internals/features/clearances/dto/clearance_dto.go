package dto

import (
	"time"

	clearanceModel "brms_backend/internals/features/clearances/model"
)

type CreateClearanceRequest struct {
	ClearanceType string `json:"clearanceType" form:"clearanceType" validate:"required,max=80"`
	Purpose       string `json:"purpose" form:"purpose" validate:"required,max=180"`
	ResidentID    uint   `json:"residentId" form:"residentId" validate:"required,min=1"`
}

type ClearanceResponse struct {
	ID            uint    `json:"id"`
	ClearanceType string  `json:"clearance_type"`
	Purpose       string  `json:"purpose"`
	Status        string  `json:"status"`
	ControlNo     string  `json:"control_no,omitempty"`
	IssuedAt      *string `json:"issued_at,omitempty"`
	ResidentID    uint    `json:"resident_id"`
	ResidentName  string  `json:"resident_name,omitempty"`
}

func NewClearanceResponse(cl *clearanceModel.ClearanceModel) ClearanceResponse {
	resp := ClearanceResponse{
		ID:            cl.ID,
		ClearanceType: cl.ClearanceType,
		Purpose:       cl.Purpose,
		Status:        cl.Status,
		ResidentID:    cl.ResidentID,
	}
	if cl.ControlNo != nil {
		resp.ControlNo = *cl.ControlNo
	}
	if cl.IssuedAt != nil {
		s := cl.IssuedAt.Format(time.RFC3339)
		resp.IssuedAt = &s
	}
	if cl.Resident != nil {
		resp.ResidentName = cl.Resident.FirstName + " " + cl.Resident.LastName
	}
	return resp
}
