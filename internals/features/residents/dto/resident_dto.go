package dto

import (
	"time"

	residentModel "brms_backend/internals/features/residents/model"
)

// CreateResidentRequest mirrors the camelCase field names the record form
// submits.
type CreateResidentRequest struct {
	FirstName     string `json:"firstName" form:"firstName" validate:"required,max=80"`
	MiddleName    string `json:"middleName" form:"middleName" validate:"max=80"`
	LastName      string `json:"lastName" form:"lastName" validate:"required,max=80"`
	Alias         string `json:"alias" form:"alias" validate:"max=80"`
	PlaceOfBirth  string `json:"placeOfBirth" form:"placeOfBirth" validate:"max=255"`
	BirthDate     string `json:"birthDate" form:"birthDate"`
	CivilStatus   string `json:"civilStatus" form:"civilStatus" validate:"max=20"`
	Purok         string `json:"purok" form:"purok" validate:"max=50"`
	VotersStatus  string `json:"votersStatus" form:"votersStatus" validate:"max=20"`
	IdentifiedAs  string `json:"identifiedAs" form:"identifiedAs" validate:"max=50"`
	Email         string `json:"email" form:"email" validate:"omitempty,email"`
	Occupation    string `json:"occupation" form:"occupation" validate:"max=120"`
	Citizenship   string `json:"citizenship" form:"citizenship" validate:"max=50"`
	Sex           string `json:"sex" form:"sex" validate:"max=10"`
	Address       string `json:"address" form:"address" validate:"required,max=255"`
	ContactNumber string `json:"contactNumber" form:"contactNumber" validate:"max=20"`
	HouseholdID   *uint  `json:"householdId" form:"householdId"`
}

type ResidentResponse struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name"`
	Alias          string `json:"alias,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Age            *int   `json:"age,omitempty"`
	Sex            string `json:"sex,omitempty"`
	Purok          string `json:"purok,omitempty"`
	Address        string `json:"address"`
	ContactNumber  string `json:"contact_number,omitempty"`
	Email          string `json:"email,omitempty"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	HouseholdID    *uint  `json:"household_id,omitempty"`
}

// ResidentOption is the trimmed shape used by dropdown selection.
type ResidentOption struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

func NewResidentResponse(r *residentModel.ResidentModel, now time.Time) ResidentResponse {
	resp := ResidentResponse{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Age:         r.AgeAt(now),
		Address:     r.Address,
		Status:      r.Status,
		HouseholdID: r.HouseholdID,
	}
	if r.BirthDate != nil {
		resp.BirthDate = time.Time(*r.BirthDate).Format("2006-01-02")
	}
	resp.MiddleName = deref(r.MiddleName)
	resp.Alias = deref(r.Alias)
	resp.Sex = deref(r.Sex)
	resp.Purok = deref(r.Purok)
	resp.ContactNumber = deref(r.ContactNumber)
	resp.Email = deref(r.Email)
	resp.ProfilePicture = deref(r.ProfilePicture)
	return resp
}

func NewResidentOption(r *residentModel.ResidentModel) ResidentOption {
	return ResidentOption{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
