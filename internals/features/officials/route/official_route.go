package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/officials/controller"
)

func OfficialRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOfficialController(db)

	r.Get("/officials/list", ctrl.List)
	r.Post("/officials", ctrl.Create)
}
