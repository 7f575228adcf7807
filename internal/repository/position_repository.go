package repository

import (
	"gorm.io/gorm"

	"registro/internal/models"
)

// GormPositionRepository is a GORM implementation of PositionRepository
type GormPositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &GormPositionRepository{db: db}
}

func (r *GormPositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

func (r *GormPositionRepository) FindByID(id uint64) (*models.Position, error) {
	var position models.Position
	if err := r.db.First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *GormPositionRepository) List() ([]models.Position, error) {
	var positions []models.Position
	if err := r.db.Order("title").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// Delete removes the position, nulling position_id on employees that
// referenced it within the same transaction.
func (r *GormPositionRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Employee{}).
			Where("position_id = ?", id).
			Update("position_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Position{}, id).Error
	})
}
