package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	r.Get("/dashboard-stats", ctrl.Overview)
	r.Get("/record-types", ctrl.RecordTypes)
	r.Post("/new-record", ctrl.NewRecord)
	r.Get("/search", ctrl.Search)
	r.Get("/reports/monthly", ctrl.MonthlyReport)
}
