package repository

import (
	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories(activeOnly bool) ([]entity.Category, error) {
	var cats []entity.Category
	q := r.DB.Order("sort_order ASC, name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) UpdateCategory(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteCategory(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Category{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Menu items ----------------

func (r *MenuRepository) ListItems(categoryID uint, availableOnly bool) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("sort_order ASC, name ASC")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
