package dto

import (
	"time"

	officialModel "brms_backend/internals/features/officials/model"
)

type CreateOfficialRequest struct {
	FullName  string `json:"fullName" form:"fullName" validate:"required,max=120"`
	Position  string `json:"position" form:"position" validate:"required,max=80"`
	TermStart string `json:"termStart" form:"termStart"`
	TermEnd   string `json:"termEnd" form:"termEnd"`
}

type OfficialResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	TermStart string `json:"term_start,omitempty"`
	TermEnd   string `json:"term_end,omitempty"`
	Status    string `json:"status"`
}

func NewOfficialResponse(o *officialModel.OfficialModel) OfficialResponse {
	resp := OfficialResponse{
		ID:       o.ID,
		FullName: o.FullName,
		Position: o.Position,
		Status:   o.Status,
	}
	if o.TermStart != nil {
		resp.TermStart = time.Time(*o.TermStart).Format("2006-01-02")
	}
	if o.TermEnd != nil {
		resp.TermEnd = time.Time(*o.TermEnd).Format("2006-01-02")
	}
	return resp
}
