package configs

import (
	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError turns sqlite unique violations into gorm.ErrDuplicatedKey.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.WaiterCall{},
	); err != nil {
		return err
	}

	// At most one pending call per table. AutoMigrate cannot express a
	// partial index, so it is created by hand.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_waiter_calls_one_pending
		ON waiter_calls(table_id) WHERE status = 'pending' AND deleted_at IS NULL`).Error
}
