package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blotterDTO "brms_backend/internals/features/blotters/dto"
	blotterModel "brms_backend/internals/features/blotters/model"
	helper "brms_backend/internals/helpers"
)

var validate = validator.New()

type BlotterController struct {
	DB *gorm.DB
}

func NewBlotterController(db *gorm.DB) *BlotterController {
	return &BlotterController{DB: db}
}

// List supports ?status= and ?hearing_date=YYYY-MM-DD (cases whose hearing
// falls on that day), newest reports first.
func (bc *BlotterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := bc.DB.Model(&blotterModel.BlotterModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}
	if hd := strings.TrimSpace(c.Query("hearing_date")); hd != "" {
		day, err := helper.ParseISODate(hd)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hearing date format")
		}
		start, end := helper.DayRange(*day)
		query = query.Where("hearing_date >= ? AND hearing_date < ?", start, end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var blotters []blotterModel.BlotterModel
	if err := query.
		Preload("ReportedBy").
		Order("reported_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&blotters).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	items := make([]blotterDTO.BlotterResponse, 0, len(blotters))
	for i := range blotters {
		items = append(items, blotterDTO.NewBlotterResponse(&blotters[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"blotters":   items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

func (bc *BlotterController) Create(c *fiber.Ctx) error {
	var req blotterDTO.CreateBlotterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.CaseTitle = strings.TrimSpace(req.CaseTitle)
	req.CaseType = strings.TrimSpace(req.CaseType)
	req.Details = strings.TrimSpace(req.Details)
	req.Location = strings.TrimSpace(req.Location)
	req.RespondentName = strings.TrimSpace(req.RespondentName)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hearingDate, err := helper.ParseISODate(req.HearingDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hearing date format")
	}

	blotter := blotterModel.BlotterModel{
		CaseTitle:    req.CaseTitle,
		Details:      req.Details,
		Status:       blotterModel.BlotterStatusOpen,
		ReportedAt:   time.Now(),
		HearingDate:  hearingDate,
		ReportedByID: req.ReportedByID,
	}
	if req.CaseType != "" {
		blotter.CaseType = &req.CaseType
	}
	if req.Location != "" {
		blotter.Location = &req.Location
	}
	if req.RespondentName != "" {
		blotter.RespondentName = &req.RespondentName
	}

	if err := bc.DB.Create(&blotter).Error; err != nil {
		log.Printf("[ERROR] create blotter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create blotter case")
	}

	return helper.JsonCreated(c, "Blotter case created successfully", fiber.Map{
		"blotter_id": blotter.ID,
	})
}

// UpdateStatus closes a case: the only transition this endpoint accepts is
// Open → Resolved.
func (bc *BlotterController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid blotter id")
	}

	var req blotterDTO.UpdateBlotterStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !strings.EqualFold(strings.TrimSpace(req.Status), blotterModel.BlotterStatusResolved) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only the Resolved transition is allowed")
	}

	var blotter blotterModel.BlotterModel
	if err := bc.DB.First(&blotter, id).Error; err != nil {
		return helper.JsonDBError(c, err, "Blotter case not found")
	}
	if blotter.Status != blotterModel.BlotterStatusOpen {
		return helper.JsonError(c, fiber.StatusBadRequest, "Case is not open")
	}

	if err := bc.DB.Model(&blotter).
		Update("status", blotterModel.BlotterStatusResolved).Error; err != nil {
		log.Printf("[ERROR] resolve blotter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update blotter case")
	}

	return helper.JsonOK(c, "Blotter case resolved", fiber.Map{
		"blotter_id": blotter.ID,
		"status":     blotterModel.BlotterStatusResolved,
	})
}
