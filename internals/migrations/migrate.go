package migrations

import (
	"log"

	"gorm.io/gorm"

	blotterModel "brms_backend/internals/features/blotters/model"
	clearanceModel "brms_backend/internals/features/clearances/model"
	householdModel "brms_backend/internals/features/households/model"
	officialModel "brms_backend/internals/features/officials/model"
	residentModel "brms_backend/internals/features/residents/model"
	userModel "brms_backend/internals/features/users/auth/model"
)

// Run applies the schema before any route is mounted. This replaces the
// old practice of patching tables through HTTP endpoints; schema changes
// only ever happen here.
func Run(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&householdModel.HouseholdModel{},
		&residentModel.ResidentModel{},
		&blotterModel.BlotterModel{},
		&clearanceModel.ClearanceModel{},
		&officialModel.OfficialModel{},
	)
	if err != nil {
		return err
	}
	log.Println("[INFO] database migrations complete")
	return nil
}
