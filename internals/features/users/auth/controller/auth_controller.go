package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "brms_backend/internals/features/users/auth/dto"
	userModel "brms_backend/internals/features/users/auth/model"
	"brms_backend/internals/features/users/auth/service"
	helper "brms_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}

// Me returns the authenticated user, resolved from the session claims the
// middleware stored in Locals.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Login required")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return helper.JsonDBError(c, err, "User not found")
	}
	return helper.JsonOK(c, "OK", authDTO.NewUserResponse(&user))
}
