package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"brms_backend/internals/configs"
	residentDTO "brms_backend/internals/features/residents/dto"
	residentModel "brms_backend/internals/features/residents/model"
	helper "brms_backend/internals/helpers"
)

var validate = validator.New()

type ResidentController struct {
	DB *gorm.DB
}

func NewResidentController(db *gorm.DB) *ResidentController {
	return &ResidentController{DB: db}
}

// List returns a page of residents ordered by (last_name, first_name),
// optionally filtered by a case-insensitive substring of the first or last
// name. A search matching nothing is an empty page, not an error.
func (rc *ResidentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := rc.DB.Model(&residentModel.ResidentModel{})
	if q := strings.TrimSpace(c.Query("q", c.Query("search"))); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var residents []residentModel.ResidentModel
	if err := query.
		Order("last_name, first_name").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&residents).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	now := time.Now()
	items := make([]residentDTO.ResidentResponse, 0, len(residents))
	for i := range residents {
		items = append(items, residentDTO.NewResidentResponse(&residents[i], now))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"residents":  items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

// Options lists active residents for dropdown selection, ordered by name.
func (rc *ResidentController) Options(c *fiber.Ctx) error {
	var residents []residentModel.ResidentModel
	if err := rc.DB.
		Where("status = ?", "Active").
		Order("last_name, first_name").
		Find(&residents).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	options := make([]residentDTO.ResidentOption, 0, len(residents))
	for i := range residents {
		options = append(options, residentDTO.NewResidentOption(&residents[i]))
	}
	return helper.JsonOK(c, "OK", options)
}

func (rc *ResidentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resident id")
	}

	var resident residentModel.ResidentModel
	if err := rc.DB.First(&resident, id).Error; err != nil {
		return helper.JsonDBError(c, err, "Resident not found")
	}
	return helper.JsonOK(c, "OK", residentDTO.NewResidentResponse(&resident, time.Now()))
}

// Create persists a new resident from the record form. The optional
// profile picture is written to disk before the row is committed.
func (rc *ResidentController) Create(c *fiber.Ctx) error {
	var req residentDTO.CreateResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	trimResidentRequest(&req)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	birthDate, err := helper.ParseISODate(req.BirthDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid birth date format")
	}

	resident := residentModel.ResidentModel{
		FirstName:     req.FirstName,
		MiddleName:    optional(req.MiddleName),
		LastName:      req.LastName,
		Alias:         optional(req.Alias),
		PlaceOfBirth:  optional(req.PlaceOfBirth),
		CivilStatus:   optional(req.CivilStatus),
		Purok:         optional(req.Purok),
		VotersStatus:  optional(req.VotersStatus),
		IdentifiedAs:  optional(req.IdentifiedAs),
		Email:         optional(req.Email),
		Occupation:    optional(req.Occupation),
		Citizenship:   optional(req.Citizenship),
		Sex:           optional(req.Sex),
		Address:       req.Address,
		ContactNumber: optional(req.ContactNumber),
		Status:        "Active",
		HouseholdID:   req.HouseholdID,
	}
	if birthDate != nil {
		d := datatypes.Date(*birthDate)
		resident.BirthDate = &d
	}

	if file, ferr := c.FormFile("profilePicture"); ferr == nil && file != nil {
		path, uerr := helper.SaveProfileImage(configs.UploadDir, file)
		if uerr != nil {
			log.Printf("[ERROR] profile picture upload: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to store profile picture")
		}
		resident.ProfilePicture = &path
	}

	if err := rc.DB.Create(&resident).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Resident is already registered")
		}
		log.Printf("[ERROR] create resident: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resident")
	}

	return helper.JsonCreated(c, "Resident created successfully", fiber.Map{
		"resident_id": resident.ID,
	})
}

func trimResidentRequest(req *residentDTO.CreateResidentRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.MiddleName = strings.TrimSpace(req.MiddleName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Alias = strings.TrimSpace(req.Alias)
	req.PlaceOfBirth = strings.TrimSpace(req.PlaceOfBirth)
	req.CivilStatus = strings.TrimSpace(req.CivilStatus)
	req.Purok = strings.TrimSpace(req.Purok)
	req.VotersStatus = strings.TrimSpace(req.VotersStatus)
	req.IdentifiedAs = strings.TrimSpace(req.IdentifiedAs)
	req.Email = strings.TrimSpace(req.Email)
	req.Occupation = strings.TrimSpace(req.Occupation)
	req.Citizenship = strings.TrimSpace(req.Citizenship)
	req.Sex = strings.TrimSpace(req.Sex)
	req.Address = strings.TrimSpace(req.Address)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isDuplicateKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
