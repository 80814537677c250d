package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/blotters/controller"
)

func BlotterRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlotterController(db)

	r.Get("/blotters/list", ctrl.List)
	r.Post("/blotters", ctrl.Create)
	r.Patch("/blotters/:id/status", ctrl.UpdateStatus)
}
