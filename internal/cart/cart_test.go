package cart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cape/internal/delivery"
	"cape/internal/models"
	"cape/internal/notify"
)

func menuItem(id int, price string) models.MenuItem {
	return models.MenuItem{
		ID:       id,
		Name:     fmt.Sprintf("Блюдо %d", id),
		Weight:   "200 г",
		Price:    price,
		ImageURL: "/assets/test.jpg",
		Category: "appetizers",
	}
}

func newTestSession() (*Session, *notify.Recorder, *MemoryStore) {
	recorder := &notify.Recorder{}
	store := NewMemoryStore()
	return NewSession("sess-1", store, recorder), recorder, store
}

func TestAddItem(t *testing.T) {
	s, recorder, _ := newTestSession()

	s.AddItem(menuItem(1, "500.-"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 500.0, items[0].Subtotal)

	require.Len(t, recorder.Pushed, 1)
	assert.Equal(t, notify.TypeSuccess, recorder.Pushed[0].Type)
	assert.Equal(t, "Добавлено в корзину", recorder.Pushed[0].Title)
}

func TestAddItemIncrementsExisting(t *testing.T) {
	s, _, _ := newTestSession()
	item := menuItem(1, "500.-")

	s.AddItem(item)
	s.AddItem(item)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1000.0, items[0].Subtotal)
}

func TestAddItemCapsQuantity(t *testing.T) {
	s, recorder, _ := newTestSession()
	item := menuItem(1, "500.-")

	// Adding the same item 11 times caps at 10, not 11.
	for i := 0; i < 11; i++ {
		s.AddItem(item)
	}
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, delivery.MaxQuantityPerItem, items[0].Quantity)
	assert.Equal(t, 5000.0, items[0].Subtotal)

	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, notify.TypeWarning, last.Type)
	assert.Equal(t, "Достигнуто максимальное количество", last.Title)
}

func TestAddItemCartFull(t *testing.T) {
	s, recorder, _ := newTestSession()

	for i := 1; i <= delivery.MaxItemsInCart; i++ {
		s.AddItem(menuItem(i, "100.-"))
	}
	require.Len(t, s.Items(), delivery.MaxItemsInCart)

	// The 51st distinct item does not fit.
	s.AddItem(menuItem(delivery.MaxItemsInCart+1, "100.-"))
	items := s.Items()
	assert.Len(t, items, delivery.MaxItemsInCart)
	for _, item := range items {
		assert.NotEqual(t, delivery.MaxItemsInCart+1, item.ID)
	}

	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, notify.TypeWarning, last.Type)
	assert.Equal(t, "Корзина заполнена", last.Title)
}

func TestRemoveItem(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(2, "350.-"))

	s.RemoveItem(1)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, notify.TypeInfo, last.Type)
	assert.Equal(t, "Удалено из корзины", last.Title)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))
	before := len(recorder.Pushed)

	s.RemoveItem(99)
	assert.Len(t, s.Items(), 1)
	assert.Len(t, recorder.Pushed, before)
}

func TestUpdateQuantity(t *testing.T) {
	s, _, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))

	s.UpdateQuantity(1, 4)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 2000.0, items[0].Subtotal)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))

	s.UpdateQuantity(1, 0)
	assert.Empty(t, s.Items())
	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, "Удалено из корзины", last.Title)

	s.AddItem(menuItem(2, "350.-"))
	s.UpdateQuantity(2, -3)
	assert.Empty(t, s.Items())
}

func TestUpdateQuantityClamped(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))

	s.UpdateQuantity(1, 25)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, delivery.MaxQuantityPerItem, items[0].Quantity)

	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, notify.TypeWarning, last.Type)
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	s, recorder, _ := newTestSession()
	before := len(recorder.Pushed)
	s.UpdateQuantity(42, 3)
	assert.Empty(t, s.Items())
	assert.Len(t, recorder.Pushed, before)
}

func TestClear(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(2, "350.-"))

	s.Clear()
	assert.Empty(t, s.Items())

	last := recorder.Pushed[len(recorder.Pushed)-1]
	assert.Equal(t, "Корзина очищена", last.Title)
	assert.Equal(t, "Удалено 3 товара", last.Description)
}

func TestClearEmptyCartStaysSilent(t *testing.T) {
	s, recorder, _ := newTestSession()
	s.Clear()
	assert.Empty(t, recorder.Pushed)
}

func TestPluralizeItems(t *testing.T) {
	assert.Equal(t, "товар", pluralizeItems(1))
	assert.Equal(t, "товара", pluralizeItems(2))
	assert.Equal(t, "товара", pluralizeItems(4))
	assert.Equal(t, "товаров", pluralizeItems(5))
	assert.Equal(t, "товаров", pluralizeItems(12))
}

func TestTotals(t *testing.T) {
	s, _, _ := newTestSession()
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(2, "350.-"))

	totals := s.Totals()
	assert.Equal(t, 1350.0, totals.Subtotal)
	assert.Equal(t, 300.0, totals.DeliveryFee)
	assert.Equal(t, 1650.0, totals.Total)
	assert.Equal(t, 3, s.ItemCount())
}

func TestSessionPersistsAcrossRestarts(t *testing.T) {
	recorder := &notify.Recorder{}
	store := NewMemoryStore()

	s := NewSession("sess-1", store, recorder)
	s.AddItem(menuItem(1, "500.-"))
	s.AddItem(menuItem(1, "500.-"))

	reloaded := NewSession("sess-1", store, recorder)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1000.0, items[0].Subtotal)
}

func TestManagerReturnsSameSession(t *testing.T) {
	m := NewManager(NewMemoryStore(), notify.Noop{})
	a := m.Get("sess-1")
	b := m.Get("sess-1")
	assert.Same(t, a, b)
	assert.NotSame(t, a, m.Get("sess-2"))

	m.Drop("sess-1")
	assert.NotSame(t, a, m.Get("sess-1"))
}
