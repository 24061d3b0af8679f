package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatus        = "order_status_changed"
	EventReservationCreated = "reservation_created"
	EventReservationStatus  = "reservation_status_changed"
)

type Event struct {
	Type          string    `json:"type"`
	RestaurantID  string    `json:"restaurant_id"`
	OrderID       string    `json:"order_id,omitempty"`
	ReservationID string    `json:"reservation_id,omitempty"`
	TableNumber   string    `json:"table_number,omitempty"`
	Status        string    `json:"status"`
	Total         float64   `json:"total,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
