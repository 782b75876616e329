package setting

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, EnsureSchema(db), "failed to migrate test database")

	return db
}

func testDefaults() map[string]string {
	return map[string]string{
		"site_name":     "Olatundun Nursing Home and Geriatric Center",
		"logo_text":     "O",
		"contact_phone": "+234 800 000 0000",
		"contact_email": "olatundungeriatric25@gmail.com",
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// Running the migration again must not error or disturb data.
	require.NoError(t, SeedDefaults(db, testDefaults()))
	require.NoError(t, EnsureSchema(db))

	record, err := ReadAll(db)
	require.NoError(t, err)
	assert.Len(t, record, 4)
}

func TestSeedDefaults_InsertsMissingKeys(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	record, err := ReadAll(db)
	require.NoError(t, err)
	assert.Equal(t, testDefaults(), record)
}

func TestSeedDefaults_NeverClobbersExistingValues(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	// Simulate an admin edit, then redeploy with the same defaults.
	require.NoError(t, WriteMany(db, map[string]string{"contact_phone": "08011112222"}))
	require.NoError(t, SeedDefaults(db, testDefaults()))

	s, err := Get(db, "contact_phone")
	require.NoError(t, err)
	assert.Equal(t, "08011112222", s.Value)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	before, err := ReadAll(db)
	require.NoError(t, err)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	after, err := ReadAll(db)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMigrateStaleValue_RollsForwardStaleSentinel(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, map[string]string{
		"contact_email": "info@olatundunhealth.com",
	}))

	require.NoError(t, MigrateStaleValue(db,
		"contact_email", "info@olatundunhealth.com", "olatundungeriatric25@gmail.com"))

	s, err := Get(db, "contact_email")
	require.NoError(t, err)
	assert.Equal(t, "olatundungeriatric25@gmail.com", s.Value)
}

func TestMigrateStaleValue_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, map[string]string{
		"contact_email": "info@olatundunhealth.com",
	}))

	require.NoError(t, MigrateStaleValue(db,
		"contact_email", "info@olatundunhealth.com", "olatundungeriatric25@gmail.com"))
	require.NoError(t, MigrateStaleValue(db,
		"contact_email", "info@olatundunhealth.com", "olatundungeriatric25@gmail.com"))

	s, err := Get(db, "contact_email")
	require.NoError(t, err)
	assert.Equal(t, "olatundungeriatric25@gmail.com", s.Value)
}

func TestMigrateStaleValue_NoOpWhenValueCustomized(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, map[string]string{
		"contact_email": "admin@example.com", // already customized
	}))

	require.NoError(t, MigrateStaleValue(db,
		"contact_email", "info@olatundunhealth.com", "olatundungeriatric25@gmail.com"))

	s, err := Get(db, "contact_email")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", s.Value)
}

func TestWriteMany_UpdatesExistingKeys(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	require.NoError(t, WriteMany(db, map[string]string{
		"contact_phone": "08011112222",
		"logo_text":     "OL",
	}))

	record, err := ReadAll(db)
	require.NoError(t, err)
	assert.Equal(t, "08011112222", record["contact_phone"])
	assert.Equal(t, "OL", record["logo_text"])
	assert.Equal(t, "Olatundun Nursing Home and Geriatric Center", record["site_name"])
}

func TestWriteMany_IgnoresUnknownKeys(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	before, err := ReadAll(db)
	require.NoError(t, err)

	require.NoError(t, WriteMany(db, map[string]string{"nonexistent_key": "x"}))

	after, err := ReadAll(db)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NotContains(t, after, "nonexistent_key")
}

func TestWriteMany_RollsBackWholeBatchOnFailure(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testDefaults()))

	before, err := ReadAll(db)
	require.NoError(t, err)

	// Force the third UPDATE of the batch to fail so earlier updates have
	// already been applied inside the transaction when the error hits.
	errForced := errors.New("forced update failure")
	calls := 0
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("test:force_fail", func(tx *gorm.DB) {
			calls++
			if calls == 3 {
				_ = tx.AddError(errForced)
			}
		}))
	defer func() {
		require.NoError(t, db.Callback().Update().Remove("test:force_fail"))
	}()

	err = WriteMany(db, map[string]string{
		"site_name":     "changed",
		"logo_text":     "changed",
		"contact_phone": "changed",
		"contact_email": "changed",
	})
	require.Error(t, err)

	after, readErr := ReadAll(db)
	require.NoError(t, readErr)
	assert.Equal(t, before, after, "failed batch must leave the store untouched")
}

func TestGet_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestNilDatabase(t *testing.T) {
	assert.ErrorIs(t, EnsureSchema(nil), ErrDBNil)
	assert.ErrorIs(t, SeedDefaults(nil, nil), ErrDBNil)
	assert.ErrorIs(t, MigrateStaleValue(nil, "k", "a", "b"), ErrDBNil)
	assert.ErrorIs(t, WriteMany(nil, nil), ErrDBNil)

	_, err := ReadAll(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	_, err = Get(nil, "k")
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestGet_EmptyKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "")
	assert.ErrorIs(t, err, ErrSettingKeyEmpty)
}
