package storage

import (
	"Frontend/models"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	data   map[string]string
	getErr error
	setErr error
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memoryStore) Close() error { return nil }

func TestConfigStoreSaveThenReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")

	fileStore, err := NewFileStore(path)
	require.NoError(t, err)
	saved, err := NewConfigStore(fileStore, "apiConfig").Save(ctx, models.APIConfig{Product: "a", Auth: "b", Order: "c"})
	require.NoError(t, err)
	assert.Equal(t, models.APIConfig{Product: "a", Auth: "b", Order: "c"}, saved)

	//模擬重新啟動
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	fresh := NewConfigStore(reopened, "apiConfig")
	assert.Equal(t, models.APIConfig{}, fresh.Current())

	loaded := fresh.Load(ctx)
	assert.Equal(t, models.APIConfig{Product: "a", Auth: "b", Order: "c"}, loaded)
	assert.Equal(t, loaded, fresh.Current())
}

func TestConfigStoreSaveTrims(t *testing.T) {
	mem := &memoryStore{data: map[string]string{}}
	store := NewConfigStore(mem, "apiConfig")

	saved, err := store.Save(context.Background(), models.APIConfig{Product: "  http://p/ ", Auth: "\thttp://a", Order: ""})
	require.NoError(t, err)

	assert.Equal(t, models.APIConfig{Product: "http://p/", Auth: "http://a"}, saved)
	assert.JSONEq(t, `{"product":"http://p/","auth":"http://a","order":""}`, mem.data["apiConfig"])
}

func TestConfigStoreSaveFailureKeepsCurrent(t *testing.T) {
	mem := &memoryStore{data: map[string]string{"apiConfig": `{"product":"old"}`}}
	store := NewConfigStore(mem, "apiConfig")
	store.Load(context.Background())

	mem.setErr = errors.New("disk full")
	_, err := store.Save(context.Background(), models.APIConfig{Product: "new"})
	assert.Error(t, err)
	assert.Equal(t, "old", store.Current().Product)
}

func TestConfigStoreLoadIsPermissive(t *testing.T) {
	tests := []struct {
		name  string
		store *memoryStore
		want  models.APIConfig
	}{
		{"missing", &memoryStore{data: map[string]string{}}, models.APIConfig{}},
		{"malformed", &memoryStore{data: map[string]string{"apiConfig": "{oops"}}, models.APIConfig{}},
		{"not an object", &memoryStore{data: map[string]string{"apiConfig": `["a"]`}}, models.APIConfig{}},
		{"partial", &memoryStore{data: map[string]string{"apiConfig": `{"auth":"http://a"}`}}, models.APIConfig{Auth: "http://a"}},
		{"wrong types", &memoryStore{data: map[string]string{"apiConfig": `{"product":1,"order":"http://o"}`}}, models.APIConfig{Order: "http://o"}},
		{"read error", &memoryStore{getErr: errors.New("boom")}, models.APIConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore(tt.store, "apiConfig")
			assert.Equal(t, tt.want, store.Load(context.Background()))
		})
	}
}
