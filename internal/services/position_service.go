package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"registro/internal/models"
	"registro/internal/repository"
)

var (
	ErrPositionNotFound      = errors.New("position not found")
	ErrPositionTitleRequired = errors.New("title is required")
	ErrPositionExists        = errors.New("position already exists")
)

// PositionService handles position business logic.
type PositionService struct {
	positionRepo repository.PositionRepository
}

// NewPositionService creates a new PositionService.
func NewPositionService(positionRepo repository.PositionRepository) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
	}
}

// List returns all positions ordered by title.
func (s *PositionService) List() ([]models.Position, error) {
	return s.positionRepo.List()
}

// Create stores a new position.
func (s *PositionService) Create(title string) (*models.Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrPositionTitleRequired
	}

	position := &models.Position{Title: title}
	if err := s.positionRepo.Create(position); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPositionExists
		}
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return position, nil
}

// Delete removes a position. Its employees stay, unassigned.
func (s *PositionService) Delete(id uint64) error {
	if _, err := s.positionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPositionNotFound
		}
		return fmt.Errorf("failed to find position: %w", err)
	}
	if err := s.positionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}
