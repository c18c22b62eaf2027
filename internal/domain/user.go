package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleGuest    Role = "guest"
)

// User is a staff account for the admin API.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" validate:"required" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Email        string     `json:"email" validate:"required,email"`
	Role         Role       `json:"role" gorm:"default:guest"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
