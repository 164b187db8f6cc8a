package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"
)

// ApiClient handles API requests to the Cape API. The cookie jar keeps
// the session cookie, so the cart survives between calls.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("CAPE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	jar, _ := cookiejar.New(nil)
	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		BaseURL: baseURL,
	}

	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available.\n", baseURL)
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// MenuItem represents a dish on the menu
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Composition string `json:"composition"`
	Weight      string `json:"weight"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

// CartItem represents a line in the cart
type CartItem struct {
	ID       int      `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

// CartTotals holds the money values of the cart
type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	Formatted   struct {
		Subtotal    string `json:"subtotal"`
		DeliveryFee string `json:"deliveryFee"`
		Total       string `json:"total"`
	} `json:"formatted"`
}

// CartView is the cart payload as the API renders it
type CartView struct {
	Items           []CartItem `json:"items"`
	ItemCount       int        `json:"itemCount"`
	Totals          CartTotals `json:"totals"`
	MinimumOrderMet bool       `json:"minimumOrderMet"`
	FreeDelivery    struct {
		Eligible  bool    `json:"eligible"`
		Remaining float64 `json:"remaining"`
		Progress  float64 `json:"progress"`
	} `json:"freeDelivery"`
}

// Slot represents a delivery time window
type Slot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	TimeRange string `json:"timeRange"`
	Available bool   `json:"available"`
}

// SlotGroup is one day's worth of delivery windows
type SlotGroup struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Slots []Slot `json:"slots"`
}

// Confirmation is the stored order as replayed by the API
type Confirmation struct {
	OrderID      string     `json:"orderId"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customerName"`
	Address      string     `json:"address"`
	DeliveryDate string     `json:"deliveryDate"`
	TimeRange    string     `json:"timeRange"`
	Items        []CartItem `json:"items"`
	Totals       CartTotals `json:"totals"`
}

// apiError mirrors the API error envelope
type apiError struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

func (e apiError) message() string {
	msg := e.Error
	for field, text := range e.Fields {
		msg += fmt.Sprintf("; %s: %s", field, text)
	}
	return msg
}

// GetMenu retrieves the full menu
func (c *ApiClient) GetMenu() ([]MenuItem, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/menu")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get menu with status code: %d", resp.StatusCode)
	}

	var response struct {
		Items []MenuItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Items, nil
}

// GetCart retrieves the current cart
func (c *ApiClient) GetCart() (*CartView, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/cart")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeCart(resp)
}

// AddToCart adds one unit of a menu item to the cart
func (c *ApiClient) AddToCart(menuItemID int) (*CartView, error) {
	data, _ := json.Marshal(map[string]int{"menu_item_id": menuItemID})

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/cart/items", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeCart(resp)
}

// UpdateQuantity changes the quantity of a cart line
func (c *ApiClient) UpdateQuantity(menuItemID, quantity int) (*CartView, error) {
	data, _ := json.Marshal(map[string]int{"quantity": quantity})

	req, err := http.NewRequest("PUT", fmt.Sprintf("%s/api/v1/cart/items/%d", c.BaseURL, menuItemID), bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeCart(resp)
}

// RemoveItem deletes a cart line
func (c *ApiClient) RemoveItem(menuItemID int) (*CartView, error) {
	req, err := http.NewRequest("DELETE", fmt.Sprintf("%s/api/v1/cart/items/%d", c.BaseURL, menuItemID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeCart(resp)
}

// ClearCart empties the cart
func (c *ApiClient) ClearCart() (*CartView, error) {
	req, err := http.NewRequest("DELETE", c.BaseURL+"/api/v1/cart", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeCart(resp)
}

// GetSlots retrieves the bookable delivery windows grouped by day
func (c *ApiClient) GetSlots() ([]SlotGroup, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/delivery/slots")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get delivery slots with status code: %d", resp.StatusCode)
	}

	var response struct {
		Groups []SlotGroup `json:"groups"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Groups, nil
}

// Checkout submits the current cart as an order
func (c *ApiClient) Checkout(name, phone, address, slotID string) (string, error) {
	payload := map[string]interface{}{
		"customer_info": map[string]string{
			"name":    name,
			"phone":   phone,
			"address": address,
		},
		"slot_id": slotID,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/checkout", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusCreated {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("%s", apiErr.message())
		}
		return "", fmt.Errorf("checkout failed with status code: %d", resp.StatusCode)
	}

	var response struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	return response.OrderID, nil
}

// GetConfirmation retrieves the stored order by its id
func (c *ApiClient) GetConfirmation(orderID string) (*Confirmation, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/orders/" + orderID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	var confirmation Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func decodeCart(resp *http.Response) (*CartView, error) {
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s", apiErr.Error)
		}
		return nil, fmt.Errorf("cart request failed with status code: %d", resp.StatusCode)
	}

	var view CartView
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}
