package services

import (
	"context"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// PackageService manages laundry packages
type PackageService struct {
	db *gorm.DB
}

// NewPackageService creates a package service on top of db
func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{db: db}
}

// List returns all packages by name, each with its latest orders
func (s *PackageService) List(ctx context.Context) ([]models.Package, error) {
	db := s.db.WithContext(ctx)

	var packages []models.Package
	if err := db.Order("name ASC").Find(&packages).Error; err != nil {
		return nil, internal("Failed to fetch packages", err)
	}

	ids := make([]uint, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
	}
	recent, err := recentOrders(db, "package_id", ids, func(o models.LaundryOrder) (uint, bool) {
		return o.PackageID, true
	})
	if err != nil {
		return nil, internal("Failed to fetch packages", err)
	}
	for i := range packages {
		packages[i].Orders = recent[packages[i].ID]
	}

	return packages, nil
}

// Get returns one package with its orders and their customers
func (s *PackageService) Get(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	db := s.db.WithContext(ctx).
		Preload("Orders", newestFirst).
		Preload("Orders.Customer")
	if err := findByID(db, &pkg, id, "Package not found", "Failed to fetch package"); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Create validates input and stores a new package with a unique name
func (s *PackageService) Create(ctx context.Context, input schemas.PackageInput) (*models.Package, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	taken, err := valueTaken(db, &models.Package{}, "name", input.Name, 0)
	if err != nil {
		return nil, internal("Failed to create package", err)
	}
	if taken {
		return nil, conflict("Package with this name already exists")
	}

	pkg := models.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.PriceValue(),
		Active:      input.IsActive(),
	}
	if err := db.Create(&pkg).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Package with this name already exists")
		}
		return nil, internal("Failed to create package", err)
	}

	return &pkg, nil
}

// Update replaces a package's fields, keeping the name unique. Existing order
// totals are not touched.
func (s *PackageService) Update(ctx context.Context, id uint, input schemas.PackageInput) (*models.Package, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var pkg models.Package
	if err := findByID(db, &pkg, id, "Package not found", "Failed to update package"); err != nil {
		return nil, err
	}

	if input.Name != pkg.Name {
		taken, err := valueTaken(db, &models.Package{}, "name", input.Name, pkg.ID)
		if err != nil {
			return nil, internal("Failed to update package", err)
		}
		if taken {
			return nil, conflict("Package name is already taken by another package")
		}
	}

	pkg.Name = input.Name
	pkg.Description = input.Description
	pkg.Price = input.PriceValue()
	pkg.Active = input.IsActive()
	if err := db.Save(&pkg).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Package name is already taken by another package")
		}
		return nil, internal("Failed to update package", err)
	}

	return &pkg, nil
}

// Delete removes a package that no order uses
func (s *PackageService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var pkg models.Package
	if err := findByID(db, &pkg, id, "Package not found", "Failed to delete package"); err != nil {
		return err
	}

	count, err := countOrders(db, "package_id", pkg.ID)
	if err != nil {
		return internal("Failed to delete package", err)
	}
	if count > 0 {
		return hasDependents("Cannot delete package with existing orders. Please delete or reassign orders first.")
	}

	if err := db.Delete(&pkg).Error; err != nil {
		return internal("Failed to delete package", err)
	}
	return nil
}
