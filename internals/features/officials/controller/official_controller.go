package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	officialDTO "brms_backend/internals/features/officials/dto"
	officialModel "brms_backend/internals/features/officials/model"
	helper "brms_backend/internals/helpers"
)

var validate = validator.New()

type OfficialController struct {
	DB *gorm.DB
}

func NewOfficialController(db *gorm.DB) *OfficialController {
	return &OfficialController{DB: db}
}

func (oc *OfficialController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := oc.DB.Model(&officialModel.OfficialModel{}).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var officials []officialModel.OfficialModel
	if err := oc.DB.
		Order("position, full_name").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&officials).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	items := make([]officialDTO.OfficialResponse, 0, len(officials))
	for i := range officials {
		items = append(items, officialDTO.NewOfficialResponse(&officials[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"officials":  items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

func (oc *OfficialController) Create(c *fiber.Ctx) error {
	var req officialDTO.CreateOfficialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Position = strings.TrimSpace(req.Position)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	termStart, err := helper.ParseISODate(req.TermStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term start date")
	}
	termEnd, err := helper.ParseISODate(req.TermEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term end date")
	}

	official := officialModel.OfficialModel{
		FullName: req.FullName,
		Position: req.Position,
		Status:   "Active",
	}
	if termStart != nil {
		d := datatypes.Date(*termStart)
		official.TermStart = &d
	}
	if termEnd != nil {
		d := datatypes.Date(*termEnd)
		official.TermEnd = &d
	}

	if err := oc.DB.Create(&official).Error; err != nil {
		log.Printf("[ERROR] create official: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create official")
	}

	return helper.JsonCreated(c, "Official created successfully", fiber.Map{
		"official_id": official.ID,
	})
}
