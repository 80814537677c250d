package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"brms_backend/internals/configs"
	userModel "brms_backend/internals/features/users/auth/model"
	helper "brms_backend/internals/helpers"
)

// Required gates a route group behind the session token. Unauthenticated
// requests get a 401 carrying the originally requested URL so the client
// can come back after login.
func Required(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return unauthorized(c, "Login required")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return unauthorized(c, "Session expired or invalid")
		}

		userID, ok := claims["sub"].(float64)
		if !ok || userID <= 0 {
			return unauthorized(c, "Session expired or invalid")
		}

		var user userModel.UserModel
		if err := db.Select("id", "username", "role", "is_active").
			First(&user, uint(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "Session expired or invalid")
			}
			log.Printf("[ERROR] auth middleware user lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":     fiber.StatusUnauthorized,
		"status":   "error",
		"message":  message,
		"redirect": "/?next=" + c.OriginalURL(),
	})
}
