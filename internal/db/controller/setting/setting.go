// Package setting provides the persistence operations for site settings.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/olatundun-care/sitecms/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to access a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// EnsureSchema idempotently creates the settings table if it is absent.
func EnsureSchema(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.AutoMigrate(&models.Setting{})
}

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// ReadAll retrieves every stored key-value pair.
func ReadAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	record := make(map[string]string, len(settings))
	for _, s := range settings {
		record[s.Key] = s.Value
	}

	return record, nil
}

// SeedDefaults inserts each default value only if its key does not already
// exist (insert-or-ignore). Pre-existing admin edits are never clobbered by
// redeploying new defaults, so running this on every boot is safe.
func SeedDefaults(db *gorm.DB, defaults map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	for key, value := range defaults {
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(
			&models.Setting{
				Key:   key,
				Value: value,
			},
		)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}

// MigrateStaleValue overwrites a value only while it still equals a known-stale
// sentinel. Once the admin has customized the value the update matches no row
// and the call is a no-op, so re-running a migration is always safe.
func MigrateStaleValue(db *gorm.DB, key, old, updated string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Model(&models.Setting{}).
		Where("key = ? AND value = ?", key, old).
		Update("value", updated)

	return result.Error
}

// WriteMany updates each existing key's value inside a single transaction.
// Unknown keys match no row and are silently ignored; they are never inserted.
// If any individual update fails the whole batch is rolled back and the store
// is left at its pre-write state.
func WriteMany(db *gorm.DB, pairs map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for key, value := range pairs {
			result := tx.Model(&models.Setting{}).
				Where(keyQueryPattern, key).
				Update("value", value)
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}
