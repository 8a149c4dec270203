package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a feed item. Name and Avatar are snapshots of the author
// at creation time and are not kept in sync with later profile edits.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	// Likes and Comments are ordered most-recent-first when loaded.
	Likes     []Like         `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
