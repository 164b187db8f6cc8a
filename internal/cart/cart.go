package cart

import (
	"fmt"
	"sync"

	"cape/internal/delivery"
	"cape/internal/models"
	"cape/internal/notify"
)

// Session is the cart of one visitor. Mutations notify the session's
// toast stream and persist the new state; both side effects are
// best-effort and never fail the mutation.
type Session struct {
	mu       sync.Mutex
	id       string
	items    []models.CartItem
	store    Store
	notifier notify.Notifier
}

// NewSession creates a cart for the given session id, loading whatever
// the store still holds for it.
func NewSession(id string, store Store, notifier notify.Notifier) *Session {
	s := &Session{id: id, store: store, notifier: notifier}
	if stored := store.Load(id); len(stored) > 0 {
		s.items = stored
	}
	return s
}

// Items returns a copy of the current lines.
func (s *Session) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the total number of units across all lines.
func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countUnits(s.items)
}

// Totals computes the derived money values of the cart.
func (s *Session) Totals() models.OrderTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := delivery.CalculateSubtotal(s.items)
	fee := delivery.CalculateDeliveryFee(subtotal)
	return models.OrderTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       delivery.CalculateTotal(subtotal, fee),
	}
}

// AddItem puts one unit of the menu item into the cart.
func (s *Session) AddItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *models.CartItem
	for i := range s.items {
		if s.items[i].ID == item.ID {
			existing = &s.items[i]
			break
		}
	}
	wasAtMax := existing != nil && existing.Quantity >= delivery.MaxQuantityPerItem
	wasFull := existing == nil && len(s.items) >= delivery.MaxItemsInCart

	next, changed := addItem(s.items, item)
	s.items = next

	switch {
	case wasFull:
		s.notifier.Push(s.id, notify.Notification{
			Type:        notify.TypeWarning,
			Title:       "Корзина заполнена",
			Description: fmt.Sprintf("Максимальное количество позиций: %d", delivery.MaxItemsInCart),
		})
	case wasAtMax:
		s.notifier.Push(s.id, notify.Notification{
			Type:        notify.TypeWarning,
			Title:       "Достигнуто максимальное количество",
			Description: fmt.Sprintf("Максимум %d шт. на позицию", delivery.MaxQuantityPerItem),
		})
	default:
		s.notifier.Push(s.id, notify.Notification{
			Type:        notify.TypeSuccess,
			Title:       "Добавлено в корзину",
			Description: item.Name,
			Duration:    notify.DefaultDurationMS,
		})
	}

	if changed {
		s.store.Save(s.id, s.items)
	}
}

// RemoveItem deletes a line. Unknown ids are ignored.
func (s *Session) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed *models.CartItem
	for i := range s.items {
		if s.items[i].ID == id {
			removed = &s.items[i]
			break
		}
	}

	next, changed := removeItem(s.items, id)
	s.items = next
	if !changed {
		return
	}

	s.notifier.Push(s.id, notify.Notification{
		Type:        notify.TypeInfo,
		Title:       "Удалено из корзины",
		Description: removed.MenuItem.Name,
		Duration:    notify.DefaultDurationMS,
	})
	s.store.Save(s.id, s.items)
}

// UpdateQuantity changes a line's quantity; zero or less removes the
// line. Unknown ids are ignored.
func (s *Session) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *models.CartItem
	for i := range s.items {
		if s.items[i].ID == id {
			current = &s.items[i]
			break
		}
	}
	if current == nil {
		return
	}
	previous := current.Quantity
	name := current.MenuItem.Name

	next, changed := updateQuantity(s.items, id, quantity)
	s.items = next

	switch {
	case quantity <= 0:
		s.notifier.Push(s.id, notify.Notification{
			Type:        notify.TypeInfo,
			Title:       "Удалено из корзины",
			Description: name,
			Duration:    notify.DefaultDurationMS,
		})
	case quantity > previous && quantity > delivery.MaxQuantityPerItem:
		s.notifier.Push(s.id, notify.Notification{
			Type:        notify.TypeWarning,
			Title:       "Достигнуто максимальное количество",
			Description: fmt.Sprintf("Максимум %d шт. на позицию", delivery.MaxQuantityPerItem),
		})
	}

	if changed {
		s.store.Save(s.id, s.items)
	}
}

// Clear empties the cart.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := countUnits(s.items)
	s.items = nil
	if count == 0 {
		return
	}

	s.notifier.Push(s.id, notify.Notification{
		Type:        notify.TypeInfo,
		Title:       "Корзина очищена",
		Description: fmt.Sprintf("Удалено %d %s", count, pluralizeItems(count)),
		Duration:    notify.DefaultDurationMS,
	})
	s.store.Save(s.id, s.items)
}

// Reset empties the cart without announcing it. Checkout calls this
// after a completed order so the visitor is not told the cart was
// "cleared".
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.store.Save(s.id, nil)
}

// LoadFromStorage replaces the cart wholesale. Used once at session
// start; emits no notification.
func (s *Session) LoadFromStorage(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func countUnits(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// pluralizeItems picks the Russian plural form of "товар" for a count.
func pluralizeItems(count int) string {
	switch {
	case count == 1:
		return "товар"
	case count < 5:
		return "товара"
	default:
		return "товаров"
	}
}
