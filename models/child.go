package models

import "time"

// Child is a student a parent orders catering for. NIK (national ID) and
// NIS (student number) are searchable attributes only — this system never
// validates them.
type Child struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ParentID  uint      `json:"parent_id" gorm:"not null;index"`
	Parent    User      `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Name      string    `json:"name" gorm:"not null"`
	ClassName string    `json:"class_name"`
	NIK       string    `json:"nik"`
	NIS       string    `json:"nis"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
