package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/residents/controller"
)

// ResidentRoutes mounts under the authenticated group.
func ResidentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResidentController(db)

	r.Get("/residents", ctrl.Options)
	r.Get("/residents/list", ctrl.List)
	r.Get("/residents/:id", ctrl.GetByID)
	r.Post("/residents", ctrl.Create)
}
