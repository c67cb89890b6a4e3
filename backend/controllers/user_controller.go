package controllers

import (
	"errors"
	"strconv"

	"marketplace/backend/config"
	"marketplace/backend/models"
	"marketplace/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's view
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Router /users/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := loadUserView(uc.DB, userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(userProjection(user))
}

// UpdateProfile applies a partial update: a field absent from the body keeps
// its previous value. A supplied password is re-hashed; nothing else ever
// touches the stored hash. A successful update re-issues a token.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		var existing models.User
		if err := uc.DB.Where("email = ?", *input.Email).First(&existing).Error; err == nil {
			return utils.Conflict(c, "Email already taken")
		}
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.Password = string(hashedPassword)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	token, err := utils.GenerateJWTToken(user.ID, uc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	view, err := loadUserView(uc.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	resp := userProjection(view)
	resp["token"] = token
	return c.JSON(resp)
}

// GetUsers returns a page of accounts for the admin dashboard.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "12"))
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	if pageSize < 1 {
		pageSize = 12
	}
	if page < 1 {
		page = 1
	}

	var count int64
	if err := uc.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var users []models.User
	if err := uc.DB.Offset(pageSize * (page - 1)).Limit(pageSize).Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	projected := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		projected = append(projected, fiber.Map{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"isEducator": user.IsEducator,
			"isAdmin":    user.IsAdmin,
			"createdAt":  user.CreatedAt,
		})
	}

	pages := (count + int64(pageSize) - 1) / int64(pageSize)
	return c.JSON(fiber.Map{
		"users": projected,
		"page":  page,
		"pages": pages,
	})
}

// GetUserByID returns a single account for the admin dashboard, password
// excluded as everywhere else.
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	user, err := loadUserView(uc.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(userProjection(user))
}

// DeleteUser removes an account. Course records the user created are left
// in place.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete user")
	}

	return c.JSON(fiber.Map{
		"message": "User removed",
	})
}

// UpdateUserToEducator sets the educator role flag.
func (uc *UserController) UpdateUserToEducator(c *fiber.Ctx) error {
	return uc.updateRoleFlag(c, func(user *models.User, value bool) {
		user.IsEducator = value
	}, "isEducator")
}

// UpdateUserToAdmin sets the admin role flag.
func (uc *UserController) UpdateUserToAdmin(c *fiber.Ctx) error {
	return uc.updateRoleFlag(c, func(user *models.User, value bool) {
		user.IsAdmin = value
	}, "isAdmin")
}

func (uc *UserController) updateRoleFlag(c *fiber.Ctx, set func(*models.User, bool), field string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var body map[string]bool
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	set(&user, body[field])
	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	view, err := loadUserView(uc.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(userProjection(view))
}
