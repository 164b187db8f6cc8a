package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu     list.Model
	menuList     list.Model
	cartTable    table.Model
	cart         *CartView
	slots        []SlotGroup
	selectedSlot string
	textInput    textinput.Model
	spinner      spinner.Model
	client       *ApiClient
	confirmation *Confirmation
	currentView  string
	error        string
	notice       string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// menuEntry represents a dish in the menu list
type menuEntry struct {
	dish MenuItem
}

func (e menuEntry) Title() string { return e.dish.Name }
func (e menuEntry) Description() string {
	return fmt.Sprintf("%s | %s | %s", e.dish.Price, e.dish.Weight, e.dish.Category)
}
func (e menuEntry) FilterValue() string { return e.dish.Name }

// slotEntry represents a delivery window in the slot list
type slotEntry struct {
	id    string
	label string
}

func (e slotEntry) Title() string       { return e.label }
func (e slotEntry) Description() string { return e.id }
func (e slotEntry) FilterValue() string { return e.label }

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Menu", desc: "Browse dishes and add them to the cart"},
		item{title: "Cart", desc: "Review the cart and totals"},
		item{title: "Delivery Slots", desc: "See bookable delivery windows"},
		item{title: "Checkout", desc: "Submit the order"},
		item{title: "Exit", desc: "Exit the application"},
	}

	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Cape Delivery CLI"

	menuList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	menuList.Title = "Меню"

	columns := []table.Column{
		{Title: "Dish", Width: 40},
		{Title: "Qty", Width: 5},
		{Title: "Subtotal", Width: 12},
	}
	cartTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ti := textinput.New()
	ti.Placeholder = "Имя; телефон; адрес доставки"
	ti.CharLimit = 256
	ti.Width = 60

	client := NewApiClient()

	return Model{
		mainMenu:    mainMenu,
		menuList:    menuList,
		cartTable:   cartTable,
		spinner:     s,
		textInput:   ti,
		client:      client,
		currentView: "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView != "checkout" {
				return m, tea.Quit
			}
		case "enter":
			switch m.currentView {
			case "main":
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Menu":
						m.currentView = "menu"
						return m, fetchMenu(m.client)
					case "Cart":
						m.currentView = "cart"
						return m, fetchCart(m.client)
					case "Delivery Slots":
						m.currentView = "slots"
						return m, fetchSlots(m.client)
					case "Checkout":
						m.currentView = "slot_pick"
						return m, fetchSlots(m.client)
					}
				}
			case "menu":
				if entry, ok := m.menuList.SelectedItem().(menuEntry); ok {
					return m, addToCart(m.client, entry.dish.ID)
				}
			case "slot_pick":
				if entry, ok := m.menuList.SelectedItem().(slotEntry); ok {
					m.selectedSlot = entry.id
					m.currentView = "checkout"
					m.textInput.SetValue("")
					m.textInput.Focus()
					return m, nil
				}
			case "checkout":
				return m, submitCheckout(m.client, m.textInput.Value(), m.selectedSlot)
			case "confirmation":
				m.currentView = "main"
				return m, nil
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
				m.notice = ""
			}
		case "d":
			if m.currentView == "cart" && m.cart != nil {
				if row := m.cartTable.Cursor(); row >= 0 && row < len(m.cart.Items) {
					return m, removeFromCart(m.client, m.cart.Items[row].ID)
				}
			}
		case "x":
			if m.currentView == "cart" {
				return m, clearCart(m.client)
			}
		}
	case menuMsg:
		m.menuList.SetItems(convertMenuToItems(msg.items))
		m.menuList.SetSize(80, 30)
		return m, nil
	case cartMsg:
		m.cart = msg.view
		m.cartTable.SetRows(convertCartToRows(msg.view))
		if m.currentView == "menu" {
			m.notice = successStyle.Render(fmt.Sprintf("In cart: %d items, %s", msg.view.ItemCount, msg.view.Totals.Formatted.Total))
		}
		return m, nil
	case slotsMsg:
		m.slots = msg.groups
		if m.currentView == "slot_pick" {
			m.menuList.SetItems(convertSlotsToItems(msg.groups))
			m.menuList.Title = "Время доставки"
			m.menuList.SetSize(80, 30)
		}
		return m, nil
	case confirmationMsg:
		m.confirmation = msg.confirmation
		m.currentView = "confirmation"
		m.error = ""
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "menu", "slot_pick":
		m.menuList, cmd = m.menuList.Update(msg)
	case "cart":
		m.cartTable, cmd = m.cartTable.Update(msg)
	case "checkout":
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "menu":
		help := "\nPress 'enter' to add the dish to the cart, 'esc' to go back\n"
		if m.notice != "" {
			help += m.notice + "\n"
		}
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(m.menuList.View() + help)
	case "cart":
		return docStyle.Render(cartView(m))
	case "slots":
		return docStyle.Render(slotsView(m.slots))
	case "slot_pick":
		help := "\nPress 'enter' to deliver in this window, 'esc' to go back\n"
		return docStyle.Render(m.menuList.View() + help)
	case "checkout":
		help := "\nFormat: имя; телефон; адрес. Press 'enter' to submit, 'esc' to cancel\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		view := titleStyle.Render("Оформление заказа") + "\n\n"
		view += infoStyle.Render("Slot: "+m.selectedSlot) + "\n\n"
		view += m.textInput.View() + help
		return docStyle.Render(view)
	case "confirmation":
		return docStyle.Render(confirmationView(m.confirmation))
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type menuMsg struct {
	items []MenuItem
}

type cartMsg struct {
	view *CartView
}

type slotsMsg struct {
	groups []SlotGroup
}

type confirmationMsg struct {
	confirmation *Confirmation
}

type errorMsg struct {
	err string
}

// fetchMenu retrieves the menu from the API
func fetchMenu(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetMenu()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching menu: %v", err)}
		}
		return menuMsg{items: items}
	}
}

// fetchCart retrieves the current cart
func fetchCart(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		view, err := client.GetCart()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching cart: %v", err)}
		}
		return cartMsg{view: view}
	}
}

// addToCart adds a dish to the cart
func addToCart(client *ApiClient, menuItemID int) tea.Cmd {
	return func() tea.Msg {
		view, err := client.AddToCart(menuItemID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error adding to cart: %v", err)}
		}
		return cartMsg{view: view}
	}
}

// removeFromCart deletes a cart line
func removeFromCart(client *ApiClient, menuItemID int) tea.Cmd {
	return func() tea.Msg {
		view, err := client.RemoveItem(menuItemID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error removing item: %v", err)}
		}
		return cartMsg{view: view}
	}
}

// clearCart empties the cart
func clearCart(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		view, err := client.ClearCart()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error clearing cart: %v", err)}
		}
		return cartMsg{view: view}
	}
}

// fetchSlots retrieves the delivery windows
func fetchSlots(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		groups, err := client.GetSlots()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching slots: %v", err)}
		}
		return slotsMsg{groups: groups}
	}
}

// submitCheckout parses the input line and submits the order
func submitCheckout(client *ApiClient, input, slotID string) tea.Cmd {
	return func() tea.Msg {
		parts := strings.SplitN(input, ";", 3)
		if len(parts) != 3 {
			return errorMsg{err: "Введите имя, телефон и адрес через точку с запятой"}
		}
		name := strings.TrimSpace(parts[0])
		phone := strings.TrimSpace(parts[1])
		address := strings.TrimSpace(parts[2])

		orderID, err := client.Checkout(name, phone, address, slotID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Checkout failed: %v", err)}
		}

		confirmation, err := client.GetConfirmation(orderID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Order %s submitted, but confirmation failed: %v", orderID, err)}
		}
		return confirmationMsg{confirmation: confirmation}
	}
}

// convertMenuToItems converts menu dishes to list items
func convertMenuToItems(items []MenuItem) []list.Item {
	entries := make([]list.Item, len(items))
	for i, dish := range items {
		entries[i] = menuEntry{dish: dish}
	}
	return entries
}

// convertSlotsToItems flattens the slot groups into list items
func convertSlotsToItems(groups []SlotGroup) []list.Item {
	var entries []list.Item
	for _, group := range groups {
		for _, slot := range group.Slots {
			entries = append(entries, slotEntry{
				id:    slot.ID,
				label: fmt.Sprintf("%s, %s", group.Label, slot.TimeRange),
			})
		}
	}
	return entries
}

// convertCartToRows converts cart lines to table rows
func convertCartToRows(view *CartView) []table.Row {
	rows := make([]table.Row, len(view.Items))
	for i, line := range view.Items {
		rows[i] = table.Row{
			line.MenuItem.Name,
			fmt.Sprintf("%d", line.Quantity),
			fmt.Sprintf("%.0f", line.Subtotal),
		}
	}
	return rows
}

// cartView renders the cart with its totals
func cartView(m Model) string {
	view := titleStyle.Render("Корзина") + "\n\n"
	if m.cart == nil || m.cart.ItemCount == 0 {
		view += "Корзина пуста\n"
		view += "\nPress 'esc' to go back"
		return view
	}

	view += m.cartTable.View() + "\n\n"
	view += fmt.Sprintf("Сумма заказа: %s\n", m.cart.Totals.Formatted.Subtotal)
	view += fmt.Sprintf("Доставка: %s\n", m.cart.Totals.Formatted.DeliveryFee)
	view += fmt.Sprintf("Итого: %s\n", m.cart.Totals.Formatted.Total)
	if !m.cart.FreeDelivery.Eligible {
		view += fmt.Sprintf("До бесплатной доставки: %.0f ₽\n", m.cart.FreeDelivery.Remaining)
	}
	if !m.cart.MinimumOrderMet {
		view += errorStyle.Render("Минимальная сумма заказа не достигнута") + "\n"
	}
	if m.error != "" {
		view += errorStyle.Render(m.error) + "\n"
	}

	view += "\nPress 'd' to remove the selected line, 'x' to clear, 'esc' to go back"
	return view
}

// slotsView renders the delivery windows grouped by day
func slotsView(groups []SlotGroup) string {
	view := titleStyle.Render("Время доставки") + "\n\n"
	for _, group := range groups {
		view += infoStyle.Render(group.Label) + "\n"
		for _, slot := range group.Slots {
			view += fmt.Sprintf("  %s\n", slot.TimeRange)
		}
		view += "\n"
	}
	view += "Press 'esc' to go back"
	return view
}

// confirmationView renders the submitted order
func confirmationView(confirmation *Confirmation) string {
	if confirmation == nil {
		return "Loading..."
	}

	view := titleStyle.Render("Заказ оформлен") + "\n\n"
	view += successStyle.Render("Номер заказа: "+confirmation.OrderID) + "\n\n"
	view += fmt.Sprintf("Статус: %s\n", confirmation.Status)
	view += fmt.Sprintf("Получатель: %s\n", confirmation.CustomerName)
	view += fmt.Sprintf("Адрес: %s\n", confirmation.Address)
	view += fmt.Sprintf("Доставка: %s, %s\n", confirmation.DeliveryDate, confirmation.TimeRange)

	view += "\nСостав заказа:\n"
	for i, line := range confirmation.Items {
		view += fmt.Sprintf("%d. %s (x%d)\n", i+1, line.MenuItem.Name, line.Quantity)
	}

	view += fmt.Sprintf("\nИтого: %s\n", confirmation.Totals.Formatted.Total)
	view += "\nPress 'enter' to return to the main menu"
	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
