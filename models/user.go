package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleParent  UserRole = "parent"
	RoleCashier UserRole = "cashier"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	return r == RoleParent || r == RoleCashier || r == RoleAdmin
}

// CanActAsCashier — admin is a superset of cashier.
func (r UserRole) CanActAsCashier() bool {
	return r == RoleCashier || r == RoleAdmin
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds user-facing account data. Its Role column is a lagging
// mirror of user_roles — user_roles wins whenever the two disagree.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRoleRecord is the primary role store, one row per user.
type UserRoleRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Role      UserRole  `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserRoleRecord) TableName() string {
	return "user_roles"
}
