package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"brms_backend/internals/configs"
	authDTO "brms_backend/internals/features/users/auth/dto"
	authHelper "brms_backend/internals/features/users/auth/helper"
	userModel "brms_backend/internals/features/users/auth/model"
	helper "brms_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

// Same message for unknown user and wrong password so the response does
// not leak which usernames exist.
const invalidCredentials = "Invalid username or password"

var validate = validator.New()

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Duplicate username/email is a validation error, not a server fault.
	fieldErrors := map[string]string{}
	var existing userModel.UserModel
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		fieldErrors["username"] = "already taken"
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "")
	}
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		fieldErrors["email"] = "already registered"
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fieldErrors)
	}

	passwordHash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Username: req.Username,
		Email:    req.Email,
		Password: passwordHash,
		Role:     req.Role,
		IsActive: true,
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful! Please login.", authDTO.NewUserResponse(&user))
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
		}
		return helper.JsonDBError(c, err, "")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to establish session")
	}
	helper.SetAccessTokenCookie(c, token, int(accessTTL.Seconds()))

	// Honor the post-login redirect target when one was requested.
	next := strings.TrimSpace(c.Query("next"))
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/dashboard"
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         authDTO.NewUserResponse(&user),
		"access_token": token,
		"redirect":     next,
	})
}

func Logout(c *fiber.Ctx) error {
	helper.ClearAccessTokenCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

func issueAccessToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}
