package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brms_backend/internals/features/users/auth/controller"
	authMiddleware "brms_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	// Public: the login page posts here.
	app.Post("/", ctrl.Login)
	app.Post("/login", ctrl.Login)
	app.Post("/register", ctrl.Register)
	app.Post("/logout", ctrl.Logout)
	app.Get("/logout", ctrl.Logout)

	app.Get("/api/me", authMiddleware.Required(db), ctrl.Me)
}
