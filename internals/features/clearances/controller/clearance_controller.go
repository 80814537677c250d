package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clearanceDTO "brms_backend/internals/features/clearances/dto"
	clearanceModel "brms_backend/internals/features/clearances/model"
	residentModel "brms_backend/internals/features/residents/model"
	helper "brms_backend/internals/helpers"
)

var validate = validator.New()

type ClearanceController struct {
	DB *gorm.DB
}

func NewClearanceController(db *gorm.DB) *ClearanceController {
	return &ClearanceController{DB: db}
}

func (cc *ClearanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := cc.DB.Model(&clearanceModel.ClearanceModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var clearances []clearanceModel.ClearanceModel
	if err := query.
		Preload("Resident").
		Order("id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&clearances).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	items := make([]clearanceDTO.ClearanceResponse, 0, len(clearances))
	for i := range clearances {
		items = append(items, clearanceDTO.NewClearanceResponse(&clearances[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"clearances": items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

// Create rejects requests whose resident does not exist; nothing is
// persisted in that case.
func (cc *ClearanceController) Create(c *fiber.Ctx) error {
	var req clearanceDTO.CreateClearanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ClearanceType = strings.TrimSpace(req.ClearanceType)
	req.Purpose = strings.TrimSpace(req.Purpose)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var resident residentModel.ResidentModel
	if err := cc.DB.Select("id").First(&resident, req.ResidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Selected resident not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	clearance := clearanceModel.ClearanceModel{
		ClearanceType: req.ClearanceType,
		Purpose:       req.Purpose,
		Status:        clearanceModel.ClearanceStatusPending,
		ResidentID:    resident.ID,
	}

	if err := cc.DB.Create(&clearance).Error; err != nil {
		log.Printf("[ERROR] create clearance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create clearance request")
	}

	return helper.JsonCreated(c, "Clearance request created successfully", fiber.Map{
		"clearance_id": clearance.ID,
	})
}

// Issue moves a pending clearance to Issued, stamping issued_at and a
// control number.
func (cc *ClearanceController) Issue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid clearance id")
	}

	var clearance clearanceModel.ClearanceModel
	if err := cc.DB.First(&clearance, id).Error; err != nil {
		return helper.JsonDBError(c, err, "Clearance not found")
	}
	if clearance.Status != clearanceModel.ClearanceStatusPending {
		return helper.JsonError(c, fiber.StatusBadRequest, "Clearance is not pending")
	}

	now := time.Now()
	controlNo := "BC-" + now.Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
	updates := map[string]interface{}{
		"status":     clearanceModel.ClearanceStatusIssued,
		"issued_at":  now,
		"control_no": controlNo,
	}
	if err := cc.DB.Model(&clearance).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] issue clearance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue clearance")
	}

	return helper.JsonOK(c, "Clearance issued", fiber.Map{
		"clearance_id": clearance.ID,
		"control_no":   controlNo,
		"issued_at":    now.Format(time.RFC3339),
	})
}
