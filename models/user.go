package models

import (
	"time"
)

// StaffRole defines allowed roles for point-of-sale staff
type StaffRole string

const (
	RoleManager StaffRole = "manager"
	RoleServer  StaffRole = "server"
)

// Valid reports whether r is a known role.
func (r StaffRole) Valid() bool {
	return r == RoleManager || r == RoleServer
}

type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         StaffRole `json:"role" gorm:"not null;default:'server'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
