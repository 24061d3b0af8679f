package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleRestaurant
}

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          Role   `json:"type"`
	LoyaltyPoints *int   `json:"loyalty_points,omitempty"`
	RestaurantID  string `json:"restaurant_id,omitempty"`
}

type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cuisine     string  `json:"cuisine"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"price_range"`
	OpenHours   string  `json:"open_hours"`
	Capacity    int     `json:"capacity"`
	Menu        Menu    `json:"menu"`
	Tables      []Table `json:"tables"`
}

// FindTable looks a table up by its display number.
func (r Restaurant) FindTable(number string) (Table, bool) {
	for _, t := range r.Tables {
		if t.Number == number {
			return t, true
		}
	}
	return Table{}, false
}

type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	IsVegetarian bool    `json:"is_vegetarian,omitempty"`
	IsVegan      bool    `json:"is_vegan,omitempty"`
	IsGlutenFree bool    `json:"is_gluten_free,omitempty"`
}

// Menu keeps items in the order the restaurant lists them.
type Menu []MenuItem

func (m Menu) Find(id string) (MenuItem, bool) {
	for _, item := range m {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Categories returns the distinct categories in first-seen order.
func (m Menu) Categories() []string {
	seen := make(map[string]bool, len(m))
	categories := make([]string, 0, len(m))
	for _, item := range m {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

func (m Menu) InCategory(category string) Menu {
	filtered := make(Menu, 0, len(m))
	for _, item := range m {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

type Table struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	QRCode   string `json:"qr_code"`
}

type Reservation struct {
	ID              string            `json:"id"`
	CustomerID      string            `json:"customer_id"`
	CustomerName    string            `json:"customer_name"`
	RestaurantID    string            `json:"restaurant_id"`
	RestaurantName  string            `json:"restaurant_name"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Guests          int               `json:"guests"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	TableNumber  string      `json:"table_number"`
	Items        []OrderItem `json:"items"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
