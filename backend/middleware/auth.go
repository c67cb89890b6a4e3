package middleware

import (
	"marketplace/backend/config"
	"marketplace/backend/models"
	"marketplace/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Protect requires a valid bearer token on the request.
func Protect(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authorized, token failed")
		}
		return c.Next()
	}
}

// Educator requires the caller to hold the educator role.
func Educator(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authorized, token failed")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Not authorized, token failed")
		}
		if !user.IsEducator {
			return utils.Forbidden(c, "Not authorized as an educator")
		}
		return c.Next()
	}
}

// Admin requires the caller to hold the admin role.
func Admin(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authorized, token failed")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Not authorized, token failed")
		}
		if !user.IsAdmin {
			return utils.Forbidden(c, "Not authorized as an admin")
		}
		return c.Next()
	}
}
