package controllers

import (
	"marketplace/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadUserView loads a user together with every collection an API response
// projects: owned courses, learning list, wishlist and cart.
func loadUserView(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.
		Preload("Courses").
		Preload("Learning").
		Preload("Wishlist").
		Preload("Cart.Items").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// userProjection is the response shape shared by auth, profile, admin and
// collection endpoints. The password hash is never part of it.
func userProjection(user *models.User) fiber.Map {
	courses := make([]uint, 0, len(user.Courses))
	for _, ref := range user.Courses {
		courses = append(courses, ref.CourseID)
	}

	learning := make([]uint, 0, len(user.Learning))
	for _, ref := range user.Learning {
		learning = append(learning, ref.CourseID)
	}

	wishlist := make([]uint, 0, len(user.Wishlist))
	for _, ref := range user.Wishlist {
		wishlist = append(wishlist, ref.CourseID)
	}

	var cart fiber.Map
	if user.Cart != nil {
		items := make([]uint, 0, len(user.Cart.Items))
		for _, item := range user.Cart.Items {
			items = append(items, item.CourseID)
		}
		cart = fiber.Map{
			"user":       user.Cart.UserID,
			"courses":    items,
			"totalPrice": user.Cart.TotalPrice,
		}
	}

	return fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"courses":    courses,
		"learning":   learning,
		"wishlist":   wishlist,
		"cart":       cart,
		"isEducator": user.IsEducator,
		"isAdmin":    user.IsAdmin,
	}
}
