package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB opens the MySQL connection and migrates the schema.
// The handle is returned to the caller and passed down explicitly;
// no package-level connection is kept.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Appointment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
