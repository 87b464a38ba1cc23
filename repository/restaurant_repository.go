package repository

import (
	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restaurantID pins the singleton row.
const restaurantID = 1

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Get() (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, restaurantID).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Upsert writes the singleton row, creating it when missing.
func (r *RestaurantRepository) Upsert(rest *entity.Restaurant) error {
	rest.ID = restaurantID
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rest).Error
}

func (r *RestaurantRepository) GetSettings() (string, error) {
	var row struct{ Settings string }
	err := r.DB.Model(&entity.Restaurant{}).
		Select("settings").Where("id = ?", restaurantID).
		Limit(1).Scan(&row).Error
	return row.Settings, err
}

func (r *RestaurantRepository) SaveSettings(settings string) error {
	res := r.DB.Model(&entity.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("settings", settings)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		rest := entity.Restaurant{Name: "QR Menu Restaurant", Settings: settings}
		rest.ID = restaurantID
		return r.DB.Create(&rest).Error
	}
	return nil
}
