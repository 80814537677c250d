package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blotterController "brms_backend/internals/features/blotters/controller"
	blotterRoute "brms_backend/internals/features/blotters/route"
	clearanceController "brms_backend/internals/features/clearances/controller"
	clearanceRoute "brms_backend/internals/features/clearances/route"
	dashboardController "brms_backend/internals/features/dashboard/controller"
	dashboardRoute "brms_backend/internals/features/dashboard/route"
	householdController "brms_backend/internals/features/households/controller"
	householdRoute "brms_backend/internals/features/households/route"
	officialController "brms_backend/internals/features/officials/controller"
	officialRoute "brms_backend/internals/features/officials/route"
	residentController "brms_backend/internals/features/residents/controller"
	residentRoute "brms_backend/internals/features/residents/route"
	authRoute "brms_backend/internals/features/users/auth/route"
	authMiddleware "brms_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Everything below requires a valid session.
	log.Println("[INFO] Setting up record API...")
	api := app.Group("/api", authMiddleware.Required(db))
	residentRoute.ResidentRoutes(api, db)
	householdRoute.HouseholdRoutes(api, db)
	blotterRoute.BlotterRoutes(api, db)
	clearanceRoute.ClearanceRoutes(api, db)
	officialRoute.OfficialRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)

	// Page endpoints keep the classic URLs and serve the same payloads as
	// their API counterparts.
	log.Println("[INFO] Setting up page routes...")
	pages := app.Group("/", authMiddleware.Required(db))

	dash := dashboardController.NewDashboardController(db)
	pages.Get("/dashboard", dash.Overview)
	pages.Get("/reports", dash.MonthlyReport)

	pages.Get("/residents", residentController.NewResidentController(db).List)
	households := householdController.NewHouseholdController(db)
	pages.Get("/households", households.List)
	pages.Get("/household/:id", households.View)
	pages.Get("/blotter", blotterController.NewBlotterController(db).List)
	pages.Get("/clearances", clearanceController.NewClearanceController(db).List)
	pages.Get("/officials", officialController.NewOfficialController(db).List)
}
