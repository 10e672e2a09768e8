package database

import (
	"fmt"
	"log"

	"template-gateway/internal/config"
	"template-gateway/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

// InitGorm connects to PostgreSQL when DB_HOST is configured and falls back
// to a local SQLite file otherwise, then runs auto-migration.
func InitGorm(cfg *config.Config) {
	var err error

	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

		GormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		log.Println("Connected to PostgreSQL successfully")
	} else {
		GormDB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		log.Printf("Using SQLite database at %s", cfg.DBPath)
	}

	err = GormDB.AutoMigrate(
		&models.Project{},
		&models.Template{},
		&models.TemplateTranslation{},
		&models.SyncLog{},
		&models.SystemSetting{},
	)
	if err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}

	log.Println("Database migration completed")
}

// SyncConfig loads setting overrides from the database, or seeds the table
// from the environment on first run.
func SyncConfig(cfg *config.Config) {
	settings := []struct {
		Key   string
		Value *string
	}{
		{"VERIFY_TOKEN", &cfg.VerifyToken},
		{"GALLERY_TOKEN", &cfg.GalleryToken},
		{"PHONE_NUMBER_ID", &cfg.PhoneNumberID},
		{"WABA_ID", &cfg.WabaID},
	}

	for _, s := range settings {
		var setting models.SystemSetting
		if err := GormDB.Where("key = ?", s.Key).First(&setting).Error; err == nil {
			if setting.Value != "" {
				*s.Value = setting.Value
			}
		} else {
			if *s.Value != "" {
				GormDB.Create(&models.SystemSetting{
					Key:   s.Key,
					Value: *s.Value,
				})
			}
		}
	}
	log.Println("System settings synchronized from database")
}
