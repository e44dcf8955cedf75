package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	ProjectOne   = "project1"
	ProjectTwo   = "project2"
	ProjectAdmin = "admin"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     *string        `json:"username,omitempty" gorm:"uniqueIndex"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null;default:'user'"` // "user", "admin"
	Project      string         `json:"project" gorm:"default:'project1'"`   // "project1", "project2", "admin"
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
