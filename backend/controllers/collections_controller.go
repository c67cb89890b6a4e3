package controllers

import (
	"errors"
	"strconv"

	"marketplace/backend/config"
	"marketplace/backend/models"
	"marketplace/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CollectionsController maintains the per-user course lists: cart, wishlist,
// learning list and owned courses. All operations append; none of the lists
// has a removal endpoint, and duplicates are permitted.
type CollectionsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCollectionsController(db *gorm.DB, cfg *config.Config) *CollectionsController {
	return &CollectionsController{DB: db, Cfg: cfg}
}

// AddCourseToCart appends a course reference to the user's cart and sets the
// subtotal to the supplied value. The cart row is created on first use.
func (cc *CollectionsController) AddCourseToCart(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		Course     uint    `json:"course"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var cart models.Cart
	if err := cc.DB.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		cart = models.Cart{UserID: user.ID}
		if err := cc.DB.Create(&cart).Error; err != nil {
			return utils.InternalServerError(c, "Could not create cart")
		}
	}

	item := models.CartItem{CartID: cart.ID, CourseID: input.Course}
	if err := cc.DB.Create(&item).Error; err != nil {
		return utils.InternalServerError(c, "Could not add course to cart")
	}

	cart.TotalPrice = input.TotalPrice
	if err := cc.DB.Save(&cart).Error; err != nil {
		return utils.InternalServerError(c, "Could not update cart")
	}

	view, err := loadUserView(cc.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(userProjection(view))
}

// AddCourseToWishlist appends a course reference to the user's wishlist.
func (cc *CollectionsController) AddCourseToWishlist(c *fiber.Ctx) error {
	return cc.appendCourseRef(c, func(userID, courseID uint) error {
		return cc.DB.Create(&models.WishlistCourse{UserID: userID, CourseID: courseID}).Error
	})
}

// AddCourseToLearning appends a course reference to the user's learning list.
func (cc *CollectionsController) AddCourseToLearning(c *fiber.Ctx) error {
	return cc.appendCourseRef(c, func(userID, courseID uint) error {
		return cc.DB.Create(&models.LearningCourse{UserID: userID, CourseID: courseID}).Error
	})
}

// AddCourseToCourses appends a course reference to the user's owned courses.
func (cc *CollectionsController) AddCourseToCourses(c *fiber.Ctx) error {
	return cc.appendCourseRef(c, func(userID, courseID uint) error {
		return cc.DB.Create(&models.OwnedCourse{UserID: userID, CourseID: courseID}).Error
	})
}

func (cc *CollectionsController) appendCourseRef(c *fiber.Ctx, create func(userID, courseID uint) error) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		Course uint `json:"course"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := create(user.ID, input.Course); err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	view, err := loadUserView(cc.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(userProjection(view))
}
