package repository

import (
	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) UpdateFields(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Table{}, id)
	return res.RowsAffected, res.Error
}
