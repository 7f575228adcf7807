package models

import (
	"time"
)

type Employee struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone"`
	Salary       float64   `gorm:"not null;default:0" json:"salary"`
	DepartmentID *uint64   `gorm:"index" json:"department_id"`
	PositionID   *uint64   `gorm:"index" json:"position_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Position   *Position   `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Projects   []Project   `gorm:"many2many:project_employees" json:"-"`
}
