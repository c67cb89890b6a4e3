package controllers

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"marketplace/backend/config"
	"marketplace/backend/models"
	"marketplace/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// GetCourses returns a catalog page. A keyword narrows the result to courses
// whose name contains it, case-insensitively.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	if pageSize < 1 {
		pageSize = 20
	}
	if page < 1 {
		page = 1
	}
	keyword := c.Query("keyword")

	query := cc.DB.Model(&models.Course{})
	if keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var courses []models.Course
	if err := query.Offset(pageSize * (page - 1)).Limit(pageSize).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	pages := (count + int64(pageSize) - 1) / int64(pageSize)
	return c.JSON(fiber.Map{
		"courses": courses,
		"page":    page,
		"pages":   pages,
	})
}

// GetTopCourses returns the best rated courses, highest first.
func (cc *CoursesController) GetTopCourses(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	var courses []models.Course
	if err := cc.DB.Order("rating DESC").Limit(limit).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(courses)
}

// GetCourseByID returns a full course aggregate: subdirectories with their
// videos, plus reviews.
func (cc *CoursesController) GetCourseByID(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.
		Preload("SubDirectories.Videos").
		Preload("Reviews").
		First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(course)
}

// CreateCourse provisions the course media directory and persists the record.
// The educator role is enforced by the route middleware.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Name        string  `json:"name"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
		SubCategory string  `json:"subCategory"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Course name is required")
	}

	dir := filepath.Join(cc.Cfg.UploadDir, input.Name)
	if err := utils.EnsureDir(dir); err != nil {
		return utils.InternalServerError(c, "Could not create course directory")
	}

	course := models.Course{
		UserID:      userID,
		Name:        input.Name,
		Image:       input.Image,
		Directory:   dir,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Description: input.Description,
		Price:       input.Price,
		NumReviews:  0,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse overwrites the editable fields in place.
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Name        string  `json:"name"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
		SubCategory string  `json:"subCategory"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	course.Name = input.Name
	course.Price = input.Price
	course.Description = input.Description
	course.Image = input.Image
	course.Category = input.Category
	course.SubCategory = input.SubCategory

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(course)
}

// DeleteCourse removes the course record. References held on user records
// (owned, learning, wishlist, cart) are not cascaded and go stale.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := cc.DB.Delete(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return c.JSON(fiber.Map{
		"message": "Course removed",
	})
}

// CreateSubDirectory provisions a nested media directory and appends the
// subdirectory (with its videos) to the course.
func (cc *CoursesController) CreateSubDirectory(c *fiber.Ctx) error {
	return cc.appendSubDirectory(c)
}

// UpdateSubDirectory shares the appending behavior of CreateSubDirectory.
// The upstream contract is ambiguous here; the append semantics are kept
// rather than replaced with an in-place mutation.
func (cc *CoursesController) UpdateSubDirectory(c *fiber.Ctx) error {
	return cc.appendSubDirectory(c)
}

func (cc *CoursesController) appendSubDirectory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	parentDir := c.Params("dir")

	var input struct {
		Title  string `json:"title"`
		Videos []struct {
			Title     string `json:"title"`
			Directory string `json:"directory"`
		} `json:"videos"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Subdirectory title is required")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	dir := filepath.Join(cc.Cfg.UploadDir, parentDir, input.Title)
	if err := utils.EnsureDir(dir); err != nil {
		return utils.InternalServerError(c, "Could not create subdirectory")
	}

	subDirectory := models.SubDirectory{
		CourseID: course.ID,
		UserID:   userID,
		Title:    input.Title,
		Path:     dir,
	}
	for _, video := range input.Videos {
		subDirectory.Videos = append(subDirectory.Videos, models.Video{
			Title:     video.Title,
			Directory: video.Directory,
		})
	}

	if err := cc.DB.Create(&subDirectory).Error; err != nil {
		return utils.InternalServerError(c, "Could not create subdirectory")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Sub Directory created Successfully!",
		"subDirectory": subDirectory,
	})
}

// DeleteDirectory removes a provisioned directory tree on disk. Removal
// failures are reported, not discarded.
func (cc *CoursesController) DeleteDirectory(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	dir := c.Params("dir")

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := utils.RemoveDir(filepath.Join(cc.Cfg.UploadDir, dir)); err != nil {
		return utils.InternalServerError(c, "Could not remove directory")
	}

	return c.JSON(fiber.Map{
		"message": "Directory removed",
	})
}

// CreateCourseReview appends a review and recomputes the course's derived
// rating fields. A user gets one review per course.
func (cc *CoursesController) CreateCourseReview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.Preload("Reviews").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	for _, review := range course.Reviews {
		if review.UserID == userID {
			return utils.Conflict(c, "Course already reviewed")
		}
	}

	var reviewer models.User
	if err := cc.DB.First(&reviewer, userID).Error; err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	review := models.Review{
		CourseID: course.ID,
		UserID:   userID,
		Name:     reviewer.Name,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	if err := cc.DB.Create(&review).Error; err != nil {
		return utils.InternalServerError(c, "Could not create review")
	}

	course.Reviews = append(course.Reviews, review)
	course.NumReviews = len(course.Reviews)
	sum := 0
	for _, r := range course.Reviews {
		sum += r.Rating
	}
	course.Rating = float64(sum) / float64(len(course.Reviews))

	if err := cc.DB.Model(&course).Updates(map[string]interface{}{
		"num_reviews": course.NumReviews,
		"rating":      course.Rating,
	}).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course rating")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added",
	})
}
