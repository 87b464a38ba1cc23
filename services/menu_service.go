package services

import (
	"errors"
	"fmt"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- Categories -----

func (s *MenuService) ListCategories(activeOnly bool) ([]entity.Category, error) {
	return s.Repo.ListCategories(activeOnly)
}

func (s *MenuService) CreateCategory(cat *entity.Category) error {
	if cat.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.Repo.CreateCategory(cat)
}

func (s *MenuService) UpdateCategory(id uint, fields map[string]any) error {
	affected, err := s.Repo.UpdateCategory(id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}
	return nil
}

func (s *MenuService) DeleteCategory(id uint) error {
	affected, err := s.Repo.DeleteCategory(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}
	return nil
}

// ----- Menu items -----

func (s *MenuService) ListItems(categoryID uint, availableOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.ListItems(categoryID, availableOnly)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) CreateItem(item *entity.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if item.CategoryID == 0 {
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	return s.Repo.CreateItem(item)
}

func (s *MenuService) UpdateItem(id uint, fields map[string]any) error {
	affected, err := s.Repo.UpdateItem(id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	return nil
}

func (s *MenuService) SetItemAvailability(id uint, available bool) error {
	return s.UpdateItem(id, map[string]any{"available": available})
}

func (s *MenuService) DeleteItem(id uint) error {
	affected, err := s.Repo.DeleteItem(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	return nil
}
