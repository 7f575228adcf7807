package models

type Project struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	// Relations
	Employees []Employee `gorm:"many2many:project_employees" json:"employees,omitempty"`
}
