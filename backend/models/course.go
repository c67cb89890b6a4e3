package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"` // creator (educator)
	Name        string `gorm:"not null"`
	Image       string
	Directory   string
	Category    string
	SubCategory string
	Description string
	Price       float64 `gorm:"default:0"`

	// Rating and NumReviews are derived from Reviews and recomputed on
	// every review insert. They are never settable through an endpoint.
	Rating     float64 `gorm:"default:0"`
	NumReviews int     `gorm:"default:0"`

	SubDirectories []SubDirectory `gorm:"constraint:OnDelete:CASCADE"`
	Reviews        []Review       `gorm:"constraint:OnDelete:CASCADE"`
}

type SubDirectory struct {
	gorm.Model
	CourseID uint    `gorm:"index;not null"`
	UserID   uint    `gorm:"not null"`
	Title    string  `gorm:"not null"`
	Path     string  `gorm:"not null"`
	Videos   []Video `gorm:"constraint:OnDelete:CASCADE"`
}

type Video struct {
	gorm.Model
	SubDirectoryID uint   `gorm:"index;not null"`
	Title          string `gorm:"not null"`
	Directory      string `gorm:"not null"`
}

type Review struct {
	gorm.Model
	CourseID uint   `gorm:"index;not null"`
	UserID   uint   `gorm:"not null"`
	Name     string `gorm:"not null"` // reviewer display name at write time
	Rating   int    `gorm:"not null"`
	Comment  string
}
