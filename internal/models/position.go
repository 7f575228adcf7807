package models

type Position struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Title string `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`

	// Relations
	Employees []Employee `gorm:"foreignKey:PositionID" json:"-"`
}
