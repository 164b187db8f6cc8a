package cart

import (
	"encoding/json"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cape/internal/delivery"
	"cape/internal/models"
)

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&Record{}).Error)
	return NewGormStore(db), db
}

func storedState(t *testing.T, items []models.CartItem, version int) string {
	t.Helper()
	raw, err := json.Marshal(models.CartState{
		Items:       items,
		LastUpdated: "2026-03-14T08:00:00Z",
		Version:     version,
	})
	require.NoError(t, err)
	return string(raw)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	items := []models.CartItem{delivery.NewCartItem(menuItem(1, "500.-"), 2)}
	store.Save("sess-1", items)

	loaded := store.Load("sess-1")
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, 1000.0, loaded[0].Subtotal)
}

func TestGormStoreLoadMissingSession(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Nil(t, store.Load("nobody"))
}

func TestGormStoreVersionMismatchDeletesRecord(t *testing.T) {
	store, db := newTestStore(t)

	items := []models.CartItem{delivery.NewCartItem(menuItem(1, "500.-"), 1)}
	record := Record{
		SessionID:  "sess-1",
		StorageKey: delivery.StorageKey,
		Data:       storedState(t, items, delivery.StorageVersion+1),
	}
	require.NoError(t, db.Create(&record).Error)

	assert.Nil(t, store.Load("sess-1"))

	var count int64
	db.Model(&Record{}).Where("session_id = ?", "sess-1").Count(&count)
	assert.Zero(t, count, "stale record should be deleted")
}

func TestGormStoreMalformedDataDiscarded(t *testing.T) {
	store, db := newTestStore(t)
	require.NoError(t, db.Create(&Record{SessionID: "sess-1", Data: "{not json"}).Error)
	assert.Nil(t, store.Load("sess-1"))
}

func TestGormStoreNullItemsDiscarded(t *testing.T) {
	store, db := newTestStore(t)
	require.NoError(t, db.Create(&Record{
		SessionID: "sess-1",
		Data:      `{"items":null,"lastUpdated":"2026-03-14T08:00:00Z","version":1}`,
	}).Error)
	assert.Nil(t, store.Load("sess-1"))
}

func TestGormStoreRecomputesTamperedSubtotal(t *testing.T) {
	store, db := newTestStore(t)

	tampered := delivery.NewCartItem(menuItem(1, "500.-"), 2)
	tampered.Subtotal = 1 // disagrees with price x quantity
	record := Record{
		SessionID: "sess-1",
		Data:      storedState(t, []models.CartItem{tampered}, delivery.StorageVersion),
	}
	require.NoError(t, db.Create(&record).Error)

	loaded := store.Load("sess-1")
	require.Len(t, loaded, 1)
	assert.Equal(t, 1000.0, loaded[0].Subtotal)
}

func TestGormStoreSaveOverwrites(t *testing.T) {
	store, db := newTestStore(t)

	store.Save("sess-1", []models.CartItem{delivery.NewCartItem(menuItem(1, "500.-"), 1)})
	store.Save("sess-1", []models.CartItem{delivery.NewCartItem(menuItem(2, "350.-"), 3)})

	var count int64
	db.Model(&Record{}).Count(&count)
	assert.Equal(t, int64(1), count)

	loaded := store.Load("sess-1")
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
	assert.Equal(t, 1050.0, loaded[0].Subtotal)
}
