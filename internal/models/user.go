package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'User'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)
