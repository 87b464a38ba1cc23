package configs

import (
	"log"

	"github.com/necropharaoh/qr-menu-system/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the staff login on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedRestaurant makes sure the singleton restaurant row exists.
func SeedRestaurant() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	r := entity.Restaurant{Name: "QR Menu Restaurant", Settings: "{}"}
	r.ID = 1
	return db.Create(&r).Error
}
