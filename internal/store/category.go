package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/monthly-expense/backend/internal/models"
)

var ErrCategoryNameEmpty = fmt.Errorf("%w: the category name must not be empty", models.ErrValidation)

func normalizeCategory(c models.Category) (models.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return models.Category{}, ErrCategoryNameEmpty
	}

	return c, nil
}

// CreateCategory persists a new category. Names must be unique.
func (s *Store) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	c, err := normalizeCategory(c)
	if err != nil {
		return models.Category{}, err
	}

	c.ID = 0
	err = s.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		return models.Category{}, err
	}

	return c, nil
}

func (s *Store) GetCategory(ctx context.Context, id uint64) (models.Category, error) {
	var c models.Category

	err := s.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return models.Category{}, err
	}

	return c, nil
}

// FindCategoryByName returns the category with the name, ignoring case.
//
// Names are unique with their case, so "Food" and "food" can both exist.
// In that case, the category created first is returned.
func (s *Store) FindCategoryByName(ctx context.Context, name string) (models.Category, error) {
	var c models.Category

	err := s.db.WithContext(ctx).Where("name_key = ?", models.CategoryKey(name)).Order("id").First(&c).Error
	if err != nil {
		return models.Category{}, err
	}

	return c, nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return []models.Category{}, err
	}

	return categories, nil
}

// ReplaceCategory replaces name and description of the category.
func (s *Store) ReplaceCategory(ctx context.Context, id uint64, c models.Category) (models.Category, error) {
	c, err := normalizeCategory(c)
	if err != nil {
		return models.Category{}, err
	}

	existing, err := s.GetCategory(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	c.DefaultModel = existing.DefaultModel
	err = s.db.WithContext(ctx).Save(&c).Error
	if err != nil {
		return models.Category{}, err
	}

	return c, nil
}

// DeleteCategory deletes the category. Transactions using its name
// keep their category label.
func (s *Store) DeleteCategory(ctx context.Context, id uint64) error {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&c).Error
}
