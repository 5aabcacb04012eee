package database

import (
	"biotutor_backend/internal/config"
	"biotutor_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Unique violations must surface as gorm.ErrDuplicatedKey so the
		// repositories can treat them as a typed result.
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.CompletedLesson{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
