package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name       string `gorm:"not null"`
	Email      string `gorm:"unique;not null"`
	Password   string `gorm:"not null"` // bcrypt hash, never serialized
	IsEducator bool   `gorm:"default:false"`
	IsAdmin    bool   `gorm:"default:false"`

	Courses  []OwnedCourse    `gorm:"constraint:OnDelete:CASCADE"`
	Learning []LearningCourse `gorm:"constraint:OnDelete:CASCADE"`
	Wishlist []WishlistCourse `gorm:"constraint:OnDelete:CASCADE"`
	Cart     *Cart            `gorm:"constraint:OnDelete:CASCADE"`
}

// OwnedCourse links an educator to a course they published.
// These are plain reference rows: deleting a course does not clean
// them up, so a stale row may point at a course that no longer resolves.
type OwnedCourse struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	CourseID uint `gorm:"not null"`
}

type LearningCourse struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	CourseID uint `gorm:"not null"`
}

type WishlistCourse struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	CourseID uint `gorm:"not null"`
}

type Cart struct {
	gorm.Model
	UserID     uint       `gorm:"uniqueIndex;not null"`
	TotalPrice float64    `gorm:"default:0"`
	Items      []CartItem `gorm:"constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID   uint `gorm:"index;not null"`
	CourseID uint `gorm:"not null"`
}
