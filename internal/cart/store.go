package cart

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/jinzhu/gorm"

	"cape/internal/delivery"
	"cape/internal/models"
)

// Store persists cart state per session. Both operations are
// best-effort: a broken store behaves like an empty one.
type Store interface {
	Load(sessionID string) []models.CartItem
	Save(sessionID string, items []models.CartItem)
}

// Record is the stored row: one serialized CartState per session under
// the fixed storage key.
type Record struct {
	gorm.Model
	SessionID  string `gorm:"unique_index"`
	StorageKey string
	Data       string `gorm:"type:text"`
}

// TableName keeps the table name singular-free and explicit.
func (Record) TableName() string {
	return "cart_records"
}

// GormStore keeps carts in sqlite through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load reads the session's cart. Parse failures, a non-array item list
// and a storage version mismatch all yield an empty cart; the mismatch
// additionally deletes the stored row. Line subtotals are recomputed
// from the embedded menu item price rather than trusted verbatim.
func (s *GormStore) Load(sessionID string) []models.CartItem {
	var record Record
	if err := s.db.Where("session_id = ?", sessionID).First(&record).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			log.Printf("cart: failed to load stored cart: %v", err)
		}
		return nil
	}

	var state models.CartState
	if err := json.Unmarshal([]byte(record.Data), &state); err != nil {
		log.Printf("cart: discarding malformed stored cart: %v", err)
		return nil
	}

	if state.Version != delivery.StorageVersion {
		log.Printf("cart: storage version mismatch (%d != %d), clearing cart", state.Version, delivery.StorageVersion)
		if err := s.db.Unscoped().Delete(&record).Error; err != nil {
			log.Printf("cart: failed to delete stale cart: %v", err)
		}
		return nil
	}

	if state.Items == nil {
		return nil
	}

	items := make([]models.CartItem, len(state.Items))
	for i, item := range state.Items {
		items[i] = delivery.WithQuantity(item, item.Quantity)
	}
	return items
}

// Save writes the session's cart. Failures are logged and swallowed.
func (s *GormStore) Save(sessionID string, items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	state := models.CartState{
		Items:       items,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Version:     delivery.StorageVersion,
	}
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("cart: failed to marshal cart state: %v", err)
		return
	}

	var record Record
	err = s.db.Where("session_id = ?", sessionID).First(&record).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		record = Record{SessionID: sessionID, StorageKey: delivery.StorageKey, Data: string(data)}
		if err := s.db.Create(&record).Error; err != nil {
			log.Printf("cart: failed to create stored cart: %v", err)
		}
	case err != nil:
		log.Printf("cart: failed to look up stored cart: %v", err)
	default:
		record.Data = string(data)
		if err := s.db.Save(&record).Error; err != nil {
			log.Printf("cart: failed to update stored cart: %v", err)
		}
	}
}

// MemoryStore is an in-memory Store for tests and for running without
// a database file.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) Load(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	var state models.CartState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil
	}
	if state.Version != delivery.StorageVersion {
		delete(s.data, sessionID)
		return nil
	}
	items := make([]models.CartItem, len(state.Items))
	for i, item := range state.Items {
		items[i] = delivery.WithQuantity(item, item.Quantity)
	}
	return items
}

func (s *MemoryStore) Save(sessionID string, items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := models.CartState{
		Items:       items,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Version:     delivery.StorageVersion,
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	s.data[sessionID] = string(raw)
}
