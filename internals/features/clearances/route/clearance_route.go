package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/clearances/controller"
)

func ClearanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClearanceController(db)

	r.Get("/clearances/list", ctrl.List)
	r.Post("/clearances", ctrl.Create)
	r.Post("/clearances/:id/issue", ctrl.Issue)
}
