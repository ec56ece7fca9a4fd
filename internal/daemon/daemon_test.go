package daemon

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db"
	"github.com/barcode-maker/barcode-maker/internal/db/controller/profile"
	"github.com/barcode-maker/barcode-maker/internal/db/controller/setting"
	"github.com/barcode-maker/barcode-maker/internal/db/models"
	"github.com/barcode-maker/barcode-maker/internal/settings"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	return gdb
}

func TestPurgeProfiles(t *testing.T) {
	gdb := newTestDB(t)

	require.NoError(t, profile.Save(gdb, "stale", settings.NewDocument("Code128")))
	require.NoError(t, profile.Save(gdb, "fresh", settings.NewDocument("Qrcode")))
	_, err := setting.Set(gdb, "other:stale", []byte("x"))
	require.NoError(t, err)

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, gdb.Model(&models.Setting{}).
		Where("name IN ?", []string{profile.Key("stale"), "other:stale"}).
		UpdateColumn("updated_at", old).Error)

	n := purgeProfiles(gdb, 24*time.Hour, time.Now())
	assert.EqualValues(t, 1, n)

	_, err = setting.Get(gdb, profile.Key("stale"))
	require.ErrorIs(t, err, setting.ErrSettingNotFound)

	_, err = setting.Get(gdb, profile.Key("fresh"))
	require.NoError(t, err)

	_, err = setting.Get(gdb, "other:stale")
	require.NoError(t, err)
}

func TestRunJanitorStops(t *testing.T) {
	gdb := newTestDB(t)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		runJanitor(gdb, time.Hour, stop)
		close(done)
	}()

	close(stop)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop")
	}

	// without ttl the janitor returns at once
	runJanitor(gdb, 0, nil)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Title: "barcode-maker-test",
		DB:    config.DB{Engine: config.EngineSQLite, Path: filepath.Join(t.TempDir(), "barcode.db")},
		Cache: config.Cache{Backend: config.CacheNone},
		Webserver: config.Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Barcode: config.Barcode{DefaultFormat: "Code128", Workers: 1, MaxLines: 5},
	}

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.webService)
	assert.Nil(t, d.store)

	_, err = New(nil)
	require.Error(t, err)

	cfg.DB.Engine = "oracle"
	_, err = New(cfg)
	require.ErrorIs(t, err, config.ErrUnknownDBEngine)
}
