package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	householdDTO "brms_backend/internals/features/households/dto"
	householdModel "brms_backend/internals/features/households/model"
	residentModel "brms_backend/internals/features/residents/model"
	helper "brms_backend/internals/helpers"
)

var validate = validator.New()

type HouseholdController struct {
	DB *gorm.DB
}

func NewHouseholdController(db *gorm.DB) *HouseholdController {
	return &HouseholdController{DB: db}
}

// List returns households newest first, with the aggregate stats the list
// view shows alongside: total count and average residents per household.
func (hc *HouseholdController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := hc.DB.Model(&householdModel.HouseholdModel{})
	if q := strings.TrimSpace(c.Query("q", c.Query("search"))); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(head_name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(purok) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var households []householdModel.HouseholdModel
	if err := query.
		Preload("Residents").
		Order("id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&households).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	stats, err := hc.aggregateStats()
	if err != nil {
		return helper.JsonDBError(c, err, "")
	}

	items := make([]householdDTO.HouseholdResponse, 0, len(households))
	for i := range households {
		items = append(items, householdDTO.NewHouseholdResponse(&households[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"households": items,
		"stats":      stats,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

// View fetches one household with its residents, each with the age as of
// today.
func (hc *HouseholdController) View(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid household id")
	}

	var household householdModel.HouseholdModel
	if err := hc.DB.
		Preload("Residents", func(db *gorm.DB) *gorm.DB {
			return db.Order("last_name, first_name")
		}).
		First(&household, id).Error; err != nil {
		return helper.JsonDBError(c, err, "Household not found")
	}

	return helper.JsonOK(c, "OK", householdDTO.NewHouseholdDetailResponse(&household, time.Now()))
}

func (hc *HouseholdController) Create(c *fiber.Ctx) error {
	var req householdDTO.CreateHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.HeadName = strings.TrimSpace(req.HeadName)
	req.Address = strings.TrimSpace(req.Address)
	req.Purok = strings.TrimSpace(req.Purok)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	household := householdModel.HouseholdModel{
		HeadName: req.HeadName,
		Address:  req.Address,
	}
	if req.Purok != "" {
		household.Purok = &req.Purok
	}
	if req.ContactNumber != "" {
		household.ContactNumber = &req.ContactNumber
	}

	if err := hc.DB.Create(&household).Error; err != nil {
		log.Printf("[ERROR] create household: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create household")
	}

	return helper.JsonCreated(c, "Household created successfully", fiber.Map{
		"household_id": household.ID,
	})
}

func (hc *HouseholdController) aggregateStats() (householdDTO.HouseholdStats, error) {
	var stats householdDTO.HouseholdStats
	if err := hc.DB.Model(&householdModel.HouseholdModel{}).
		Count(&stats.TotalHouseholds).Error; err != nil {
		return stats, err
	}
	if stats.TotalHouseholds == 0 {
		return stats, nil
	}

	var assigned int64
	if err := hc.DB.Model(&residentModel.ResidentModel{}).
		Where("household_id IS NOT NULL").
		Count(&assigned).Error; err != nil {
		return stats, err
	}
	stats.AvgResidentsPerHouse = float64(assigned) / float64(stats.TotalHouseholds)
	return stats, nil
}
