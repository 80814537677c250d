package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/households/controller"
)

func HouseholdRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHouseholdController(db)

	r.Get("/households/list", ctrl.List)
	r.Get("/households/:id", ctrl.View)
	r.Post("/households", ctrl.Create)
}
