package setting

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every new connection would open a fresh in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()

	for _, s := range settings {
		err := db.Create(&s).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		seedData      []models.Setting
		expectedError error
		expectedValue []byte
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingName:   "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			settingName:   "",
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingName:   "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:        "successful get",
			dbParam:     db,
			settingName: "barcode_settings:abc",
			seedData: []models.Setting{
				{Name: "barcode_settings:abc", Value: []byte(`{"formatSettings":{}}`)},
			},
			expectedValue: []byte(`{"formatSettings":{}}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			s, err := Get(tc.dbParam, tc.settingName)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.settingName, s.Name)
			assert.Equal(t, tc.expectedValue, s.Value)
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(nil, "x", nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Set(db, "", []byte("v"))
	require.ErrorIs(t, err, ErrSettingNameEmpty)

	first, err := Set(db, "k", []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), first.Value)

	second, err := Set(db, "k", []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert keeps the row")
	assert.Equal(t, []byte("two"), second.Value)

	var n int64
	db.Model(&models.Setting{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, []models.Setting{{Name: "a", Value: []byte("1")}})

	require.ErrorIs(t, Delete(nil, "a"), ErrDBNil)
	require.ErrorIs(t, Delete(db, ""), ErrSettingNameEmpty)
	require.ErrorIs(t, Delete(db, "missing"), ErrSettingNotFound)
	require.NoError(t, Delete(db, "a"))

	_, err := Get(db, "a")
	require.ErrorIs(t, err, ErrSettingNotFound)
}

func TestCountAndPurge(t *testing.T) {
	db := setupTestDB(t)

	old := time.Now().Add(-48 * time.Hour)
	seedSettings(t, db, []models.Setting{
		{Name: "p:old", Value: []byte("1"), CreatedAt: old, UpdatedAt: old},
		{Name: "p:new", Value: []byte("2")},
		{Name: "other", Value: []byte("3"), CreatedAt: old, UpdatedAt: old},
	})

	n, err := Count(db, "p:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = Count(db, "")
	require.ErrorIs(t, err, ErrPrefixEmpty)

	purged, err := PurgeOlderThan(db, "p:", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = Get(db, "p:old")
	require.ErrorIs(t, err, ErrSettingNotFound)

	_, err = Get(db, "other")
	require.NoError(t, err, "other prefixes are untouched")
}
