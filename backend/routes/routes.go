package routes

import (
	"marketplace/backend/config"
	"marketplace/backend/controllers"
	"marketplace/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	protect := middleware.Protect(cfg)
	educator := middleware.Educator(db, cfg)
	admin := middleware.Admin(db, cfg)

	// Course catalog
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/top", coursesController.GetTopCourses)
	courses.Post("/", protect, educator, coursesController.CreateCourse)
	courses.Post("/:id/reviews", protect, coursesController.CreateCourseReview)

	// User collections. Registered before the :id/:dir routes so the literal
	// segment wins; in the upstream routing table these were shadowed.
	collectionsController := controllers.NewCollectionsController(db, cfg)
	courses.Post("/:userId/cart", protect, collectionsController.AddCourseToCart)
	courses.Post("/:userId/whishlist", protect, collectionsController.AddCourseToWishlist)
	courses.Post("/:userId/learning", protect, collectionsController.AddCourseToLearning)
	courses.Post("/:userId/courses", protect, collectionsController.AddCourseToCourses)

	courses.Get("/:id", coursesController.GetCourseByID)
	courses.Put("/:id", protect, educator, coursesController.UpdateCourse)
	courses.Delete("/:id", protect, educator, coursesController.DeleteCourse)
	courses.Post("/:id/:dir", protect, educator, coursesController.CreateSubDirectory)
	courses.Put("/:id/:dir", protect, educator, coursesController.UpdateSubDirectory)
	courses.Delete("/:id/:dir", protect, educator, coursesController.DeleteDirectory)

	// Identity
	authController := controllers.NewAuthController(db, cfg)
	userController := controllers.NewUserController(db, cfg)
	users := app.Group("/api/users")
	users.Post("/", authController.Register)
	users.Post("/login", authController.Login)
	users.Get("/profile", protect, userController.GetProfile)
	users.Put("/profile", protect, userController.UpdateProfile)

	// Admin
	users.Get("/", protect, admin, userController.GetUsers)
	users.Get("/:id", protect, admin, userController.GetUserByID)
	users.Delete("/:id", protect, admin, userController.DeleteUser)
	users.Put("/:id/educator", protect, admin, userController.UpdateUserToEducator)
	users.Put("/:id", protect, admin, userController.UpdateUserToAdmin)
}
