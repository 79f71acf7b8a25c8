package services

import (
	"context"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// PerfumeService manages scent add-ons. Perfumes have no uniqueness rule and
// nothing references them, so they can always be deleted.
type PerfumeService struct {
	db *gorm.DB
}

// NewPerfumeService creates a perfume service on top of db
func NewPerfumeService(db *gorm.DB) *PerfumeService {
	return &PerfumeService{db: db}
}

// List returns all perfumes ordered by name
func (s *PerfumeService) List(ctx context.Context) ([]models.Perfume, error) {
	var perfumes []models.Perfume
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&perfumes).Error; err != nil {
		return nil, internal("Failed to fetch perfumes", err)
	}
	return perfumes, nil
}

// Get returns one perfume
func (s *PerfumeService) Get(ctx context.Context, id uint) (*models.Perfume, error) {
	var perfume models.Perfume
	if err := findByID(s.db.WithContext(ctx), &perfume, id, "Perfume not found", "Failed to fetch perfume"); err != nil {
		return nil, err
	}
	return &perfume, nil
}

// Create validates input and stores a new perfume
func (s *PerfumeService) Create(ctx context.Context, input schemas.PerfumeInput) (*models.Perfume, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	perfume := models.Perfume{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.IsAvailable(),
	}
	if err := s.db.WithContext(ctx).Create(&perfume).Error; err != nil {
		return nil, internal("Failed to create perfume", err)
	}
	return &perfume, nil
}

// Update replaces a perfume's fields
func (s *PerfumeService) Update(ctx context.Context, id uint, input schemas.PerfumeInput) (*models.Perfume, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var perfume models.Perfume
	if err := findByID(db, &perfume, id, "Perfume not found", "Failed to update perfume"); err != nil {
		return nil, err
	}

	perfume.Name = input.Name
	perfume.Description = input.Description
	perfume.Available = input.IsAvailable()
	if err := db.Save(&perfume).Error; err != nil {
		return nil, internal("Failed to update perfume", err)
	}
	return &perfume, nil
}

// Delete removes a perfume
func (s *PerfumeService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var perfume models.Perfume
	if err := findByID(db, &perfume, id, "Perfume not found", "Failed to delete perfume"); err != nil {
		return err
	}
	if err := db.Delete(&perfume).Error; err != nil {
		return internal("Failed to delete perfume", err)
	}
	return nil
}
