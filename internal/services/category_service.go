package services

import (
	"log/slog"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, metrics MetricsRecorderInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("category_created", nil)
	slog.Info("category created", "category_id", category.ID, "name", category.Name)

	return category, nil
}

// GetCategory retrieves a single category by ID
func (s *categoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// ListCategories returns all categories in insertion order
func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// UpdateCategory replaces a category's editable fields. Expenses reference
// categories by name, so a rename leaves previously recorded expenses under
// the old label.
func (s *categoryService) UpdateCategory(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Icon = req.Icon
	category.Color = req.Color

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	slog.Info("category updated", "category_id", category.ID, "name", category.Name)

	return category, nil
}

// DeleteCategory removes a category. Expense history recorded under the
// category's name is kept as-is.
func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	s.metrics.IncrementCounter("category_deleted", nil)
	slog.Info("category deleted", "category_id", id)

	return nil
}
