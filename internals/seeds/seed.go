package seeds

import (
	"errors"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	blotterModel "brms_backend/internals/features/blotters/model"
	clearanceModel "brms_backend/internals/features/clearances/model"
	householdModel "brms_backend/internals/features/households/model"
	officialModel "brms_backend/internals/features/officials/model"
	residentModel "brms_backend/internals/features/residents/model"
)

// SampleData loads the demo dataset. Idempotent: a non-empty residents
// table means seeding already happened. Only runs when the binary is
// started with -seed; never reachable over HTTP.
func SampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&residentModel.ResidentModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[INFO] sample data already present, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		households := []householdModel.HouseholdModel{
			{HeadName: "Juan Dela Cruz", Address: "123 Main Street, Purok 1", Purok: strptr("Purok 1"), ContactNumber: strptr("09123456789")},
			{HeadName: "Maria Santos", Address: "456 Oak Avenue, Purok 2", Purok: strptr("Purok 2")},
		}
		if err := tx.Create(&households).Error; err != nil {
			return err
		}

		residents := []residentModel.ResidentModel{
			{
				FirstName: "Juan", LastName: "Dela Cruz", Sex: strptr("Male"),
				BirthDate: dateptr(1985, time.May, 15),
				Address:   "123 Main Street, Purok 1", HouseholdID: &households[0].ID,
			},
			{
				FirstName: "Maria", LastName: "Santos", Sex: strptr("Female"),
				BirthDate: dateptr(1990, time.August, 22),
				Address:   "456 Oak Avenue, Purok 2", HouseholdID: &households[1].ID,
			},
			{
				FirstName: "Ana", LastName: "Lopez", Sex: strptr("Female"),
				BirthDate: dateptr(1995, time.March, 10),
				Address:   "789 Pine Road, Purok 3",
			},
		}
		if err := tx.Create(&residents).Error; err != nil {
			return err
		}
		if residents[0].ID == 0 {
			return errors.New("seed: resident id was not generated")
		}

		blotters := []blotterModel.BlotterModel{
			{
				CaseTitle: "Noise Complaint", Details: "Loud music playing late at night",
				Location: strptr("Purok 1"), ReportedByID: &residents[0].ID,
			},
			{
				CaseTitle: "Boundary Dispute", Details: "Property line disagreement between neighbors",
				Location: strptr("Purok 2"), ReportedByID: &residents[1].ID,
			},
		}
		if err := tx.Create(&blotters).Error; err != nil {
			return err
		}

		now := time.Now()
		clearances := []clearanceModel.ClearanceModel{
			{
				ClearanceType: "Barangay Clearance", Purpose: "Employment",
				Status: clearanceModel.ClearanceStatusIssued, IssuedAt: &now,
				ResidentID: residents[0].ID,
			},
			{
				ClearanceType: "Indigency Certificate", Purpose: "Government Assistance",
				ResidentID: residents[1].ID,
			},
		}
		if err := tx.Create(&clearances).Error; err != nil {
			return err
		}

		officials := []officialModel.OfficialModel{
			{FullName: "Ramon Bautista", Position: "Punong Barangay"},
			{FullName: "Lilia Reyes", Position: "Barangay Secretary"},
		}
		if err := tx.Create(&officials).Error; err != nil {
			return err
		}

		log.Println("[INFO] sample data seeded")
		return nil
	})
}

func strptr(s string) *string { return &s }

func dateptr(year int, month time.Month, day int) *datatypes.Date {
	d := datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &d
}
