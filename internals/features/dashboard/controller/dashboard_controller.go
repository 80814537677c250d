package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blotterController "brms_backend/internals/features/blotters/controller"
	blotterModel "brms_backend/internals/features/blotters/model"
	clearanceController "brms_backend/internals/features/clearances/controller"
	"brms_backend/internals/features/dashboard/service"
	householdController "brms_backend/internals/features/households/controller"
	residentController "brms_backend/internals/features/residents/controller"
	residentModel "brms_backend/internals/features/residents/model"
	helper "brms_backend/internals/helpers"
)

type RecordType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var recordTypes = []RecordType{
	{Value: "resident", Label: "New Resident"},
	{Value: "household", Label: "New Household"},
	{Value: "blotter", Label: "New Blotter Case"},
	{Value: "clearance", Label: "New Clearance Request"},
}

type DashboardController struct {
	DB    *gorm.DB
	Stats *service.StatsService

	residents  *residentController.ResidentController
	households *householdController.HouseholdController
	blotters   *blotterController.BlotterController
	clearances *clearanceController.ClearanceController
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:         db,
		Stats:      service.NewStatsService(db),
		residents:  residentController.NewResidentController(db),
		households: householdController.NewHouseholdController(db),
		blotters:   blotterController.NewBlotterController(db),
		clearances: clearanceController.NewClearanceController(db),
	}
}

// Overview serves both the dashboard page data and /api/dashboard-stats.
// Metric failures have already been degraded to defaults by the service;
// the warnings get logged once here.
func (dc *DashboardController) Overview(c *fiber.Ctx) error {
	data, warnings := dc.Stats.Overview(time.Now())
	if len(warnings) > 0 {
		log.Printf("[WARN] dashboard metrics degraded: %s", strings.Join(warnings, "; "))
	}
	return helper.JsonOK(c, "OK", data)
}

func (dc *DashboardController) MonthlyReport(c *fiber.Ctx) error {
	data, warnings := dc.Stats.Monthly(time.Now())
	if len(warnings) > 0 {
		log.Printf("[WARN] monthly report metrics degraded: %s", strings.Join(warnings, "; "))
	}
	return helper.JsonOK(c, "OK", data)
}

func (dc *DashboardController) RecordTypes(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", recordTypes)
}

// NewRecord dispatches the combined "add record" form by its recordType
// field to the matching create handler.
func (dc *DashboardController) NewRecord(c *fiber.Ctx) error {
	switch strings.TrimSpace(c.FormValue("recordType")) {
	case "resident":
		return dc.residents.Create(c)
	case "household":
		return dc.households.Create(c)
	case "blotter":
		return dc.blotters.Create(c)
	case "clearance":
		return dc.clearances.Create(c)
	case "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Record type is required")
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record type")
	}
}

type searchResident struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

type searchBlotter struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

// Search looks up residents and blotter cases by substring. Queries
// shorter than two characters return an empty result set.
func (dc *DashboardController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	residents := []searchResident{}
	blotters := []searchBlotter{}

	if len(q) < 2 {
		return helper.JsonOK(c, "OK", fiber.Map{
			"residents": residents,
			"blotters":  blotters,
		})
	}
	pattern := "%" + strings.ToLower(q) + "%"

	var residentRows []residentModel.ResidentModel
	if err := dc.DB.
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern).
		Limit(5).Find(&residentRows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	for i := range residentRows {
		r := &residentRows[i]
		residents = append(residents, searchResident{
			ID:      r.ID,
			Name:    r.FirstName + " " + r.LastName,
			Address: r.Address,
			Type:    "resident",
		})
	}

	var blotterRows []blotterModel.BlotterModel
	if err := dc.DB.
		Where("LOWER(case_title) LIKE ?", pattern).
		Limit(5).Find(&blotterRows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	for i := range blotterRows {
		b := &blotterRows[i]
		blotters = append(blotters, searchBlotter{
			ID:     b.ID,
			Title:  b.CaseTitle,
			Status: b.Status,
			Type:   "blotter",
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"residents": residents,
		"blotters":  blotters,
	})
}
