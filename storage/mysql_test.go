package storage

import (
	"Frontend/config"
	"Frontend/models"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestMySQLStoreUpsert(t *testing.T) {
	dsn := os.Getenv("HARNESS_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("HARNESS_TEST_MYSQL_DSN not set")
	}
	ctx := context.Background()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	store := NewMySQLStore(db)
	key := "test-" + uuid.NewString()

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, key, "first"))
	require.NoError(t, store.Set(ctx, key, "second"))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	require.NoError(t, db.Unscoped().Where(&models.Setting{Key: key}).Delete(&models.Setting{}).Error)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := config.Config{}
	config.ApplyDefaults(&cfg)
	cfg.Storage.Driver = "etcd"

	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestOpenFileDriver(t *testing.T) {
	cfg := config.Config{}
	config.ApplyDefaults(&cfg)
	cfg.Storage.Path = t.TempDir() + "/storage.json"

	store, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &FileStore{}, store)
}
