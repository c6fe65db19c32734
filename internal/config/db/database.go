package db

import (
	"fmt"
	"log"

	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	var err error
	DB, err = Open(config.DbDriver)
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
	log.Println("Database connected and migrated")
}

// Open connects with the configured driver: postgres or sqlite. Unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(driver string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(config.DbPath), cfg)
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DbHost,
			config.DbPort,
			config.DbUser,
			config.DbPassword,
			config.DbName,
		)
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&application.Application{},
		&quote.Quote{},
		&contact.Contact{},
		&testimonial.Testimonial{},
	)
}
