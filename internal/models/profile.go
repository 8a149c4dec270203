package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds a user's professional profile. One profile per user.
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Status    string         `gorm:"not null" json:"status"`
	Company   string         `json:"company"`
	Website   string         `json:"website"`
	Location  string         `json:"location"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Skills    []string       `gorm:"serializer:json" json:"skills"`
	Education []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Education is a single education record on a profile, newest-first.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"profile_id"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"field_of_study"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
}
