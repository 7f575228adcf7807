package models

type Department struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relations
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"-"`
}
