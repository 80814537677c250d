package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	blotterDTO "brms_backend/internals/features/blotters/dto"
	blotterModel "brms_backend/internals/features/blotters/model"
	clearanceModel "brms_backend/internals/features/clearances/model"
	householdModel "brms_backend/internals/features/households/model"
	residentDTO "brms_backend/internals/features/residents/dto"
	residentModel "brms_backend/internals/features/residents/model"
	helper "brms_backend/internals/helpers"
)

const recentLimit = 5

type Counters struct {
	TotalResidents        int64 `json:"total_residents"`
	TotalHouseholds       int64 `json:"total_households"`
	NewResidentsWeek      int64 `json:"new_residents_week"`
	NewHouseholdsWeek     int64 `json:"new_households_week"`
	ActiveBlotters        int64 `json:"active_blotters"`
	BlottersDueToday      int64 `json:"blotters_due_today"`
	ClearancesIssuedMonth int64 `json:"clearances_issued_month"`
}

type ClearanceSummary struct {
	Pending        int64 `json:"pending"`
	ProcessedToday int64 `json:"processed_today"`
}

type Overview struct {
	Stats            Counters                       `json:"stats"`
	RecentResidents  []residentDTO.ResidentResponse `json:"recent_residents"`
	OpenBlotters     []blotterDTO.BlotterResponse   `json:"open_blotters"`
	ClearanceSummary ClearanceSummary               `json:"clearance_summary"`
	Today            string                         `json:"today"`
}

type MonthlyStats struct {
	ResidentsAdded   int64 `json:"residents_added"`
	HouseholdsAdded  int64 `json:"households_added"`
	ClearancesIssued int64 `json:"clearances_issued"`
	BlottersResolved int64 `json:"blotters_resolved"`
}

// StatsService computes the dashboard aggregates. Every metric is fallible
// in isolation: a failing query degrades that metric to its zero value and
// records a warning instead of failing the whole response.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Overview(now time.Time) (Overview, []string) {
	var warnings []string

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	dayStart, dayEnd := helper.DayRange(now)

	out := Overview{
		RecentResidents: []residentDTO.ResidentResponse{},
		OpenBlotters:    []blotterDTO.BlotterResponse{},
		Today:           now.Format("2006-01-02"),
	}

	out.Stats.TotalResidents = s.count("total_residents", &warnings,
		s.DB.Model(&residentModel.ResidentModel{}))
	out.Stats.TotalHouseholds = s.count("total_households", &warnings,
		s.DB.Model(&householdModel.HouseholdModel{}))
	out.Stats.NewResidentsWeek = s.count("new_residents_week", &warnings,
		s.DB.Model(&residentModel.ResidentModel{}).Where("created_at >= ?", weekAgo))
	out.Stats.NewHouseholdsWeek = s.count("new_households_week", &warnings,
		s.DB.Model(&householdModel.HouseholdModel{}).Where("created_at >= ?", weekAgo))
	out.Stats.ActiveBlotters = s.count("active_blotters", &warnings,
		s.DB.Model(&blotterModel.BlotterModel{}).Where("status = ?", blotterModel.BlotterStatusOpen))
	out.Stats.BlottersDueToday = s.count("blotters_due_today", &warnings,
		s.DB.Model(&blotterModel.BlotterModel{}).
			Where("hearing_date >= ? AND hearing_date < ?", dayStart, dayEnd))
	out.Stats.ClearancesIssuedMonth = s.count("clearances_issued_month", &warnings,
		s.DB.Model(&clearanceModel.ClearanceModel{}).
			Where("status = ? AND issued_at >= ?", clearanceModel.ClearanceStatusIssued, monthAgo))

	out.ClearanceSummary.Pending = s.count("pending_clearances", &warnings,
		s.DB.Model(&clearanceModel.ClearanceModel{}).
			Where("status = ?", clearanceModel.ClearanceStatusPending))
	out.ClearanceSummary.ProcessedToday = s.count("clearances_processed_today", &warnings,
		s.DB.Model(&clearanceModel.ClearanceModel{}).
			Where("status = ? AND issued_at >= ? AND issued_at < ?",
				clearanceModel.ClearanceStatusIssued, dayStart, dayEnd))

	var recent []residentModel.ResidentModel
	if err := s.DB.Order("created_at DESC").Limit(recentLimit).Find(&recent).Error; err != nil {
		warnings = append(warnings, warn("recent_residents", err))
	} else {
		for i := range recent {
			out.RecentResidents = append(out.RecentResidents, residentDTO.NewResidentResponse(&recent[i], now))
		}
	}

	var open []blotterModel.BlotterModel
	if err := s.DB.Preload("ReportedBy").
		Where("status = ?", blotterModel.BlotterStatusOpen).
		Order("reported_at DESC").Limit(recentLimit).
		Find(&open).Error; err != nil {
		warnings = append(warnings, warn("open_blotters", err))
	} else {
		for i := range open {
			out.OpenBlotters = append(out.OpenBlotters, blotterDTO.NewBlotterResponse(&open[i]))
		}
	}

	return out, warnings
}

// Monthly returns the current-month counters for the reports view.
func (s *StatsService) Monthly(now time.Time) (MonthlyStats, []string) {
	var warnings []string
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := MonthlyStats{
		ResidentsAdded: s.count("residents_added", &warnings,
			s.DB.Model(&residentModel.ResidentModel{}).Where("created_at >= ?", monthStart)),
		HouseholdsAdded: s.count("households_added", &warnings,
			s.DB.Model(&householdModel.HouseholdModel{}).Where("created_at >= ?", monthStart)),
		ClearancesIssued: s.count("clearances_issued", &warnings,
			s.DB.Model(&clearanceModel.ClearanceModel{}).
				Where("status = ? AND issued_at >= ?", clearanceModel.ClearanceStatusIssued, monthStart)),
		BlottersResolved: s.count("blotters_resolved", &warnings,
			s.DB.Model(&blotterModel.BlotterModel{}).
				Where("status = ? AND reported_at >= ?", blotterModel.BlotterStatusResolved, monthStart)),
	}
	return out, warnings
}

func (s *StatsService) count(name string, warnings *[]string, query *gorm.DB) int64 {
	var n int64
	if err := query.Count(&n).Error; err != nil {
		*warnings = append(*warnings, warn(name, err))
		return 0
	}
	return n
}

func warn(metric string, err error) string {
	return fmt.Sprintf("%s: %v", metric, err)
}
