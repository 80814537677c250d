package dto

import (
	"time"

	householdModel "brms_backend/internals/features/households/model"
	residentDTO "brms_backend/internals/features/residents/dto"
)

type CreateHouseholdRequest struct {
	HeadName      string `json:"headName" form:"headName" validate:"required,max=120"`
	Address       string `json:"address" form:"address" validate:"required,max=255"`
	Purok         string `json:"purok" form:"purok" validate:"max=50"`
	ContactNumber string `json:"contactNumber" form:"contactNumber" validate:"max=20"`
}

type HouseholdResponse struct {
	ID            uint   `json:"id"`
	HeadName      string `json:"head_name"`
	Address       string `json:"address"`
	Purok         string `json:"purok,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	CreatedAt     string `json:"created_at"`
	ResidentCount int    `json:"resident_count"`
}

type HouseholdDetailResponse struct {
	HouseholdResponse
	Residents []residentDTO.ResidentResponse `json:"residents"`
}

// HouseholdStats accompanies list responses.
type HouseholdStats struct {
	TotalHouseholds      int64   `json:"total_households"`
	AvgResidentsPerHouse float64 `json:"avg_residents_per_household"`
}

func NewHouseholdResponse(h *householdModel.HouseholdModel) HouseholdResponse {
	resp := HouseholdResponse{
		ID:            h.ID,
		HeadName:      h.HeadName,
		Address:       h.Address,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
		ResidentCount: len(h.Residents),
	}
	if h.Purok != nil {
		resp.Purok = *h.Purok
	}
	if h.ContactNumber != nil {
		resp.ContactNumber = *h.ContactNumber
	}
	return resp
}

func NewHouseholdDetailResponse(h *householdModel.HouseholdModel, now time.Time) HouseholdDetailResponse {
	detail := HouseholdDetailResponse{
		HouseholdResponse: NewHouseholdResponse(h),
	}
	detail.Residents = make([]residentDTO.ResidentResponse, 0, len(h.Residents))
	for i := range h.Residents {
		detail.Residents = append(detail.Residents, residentDTO.NewResidentResponse(&h.Residents[i], now))
	}
	return detail
}
