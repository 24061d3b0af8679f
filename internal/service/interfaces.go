package service

import (
	"context"
	"time"

	"tableside/internal/domain"
)

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
}

type ReservationFilter struct {
	RestaurantID string
	CustomerID   string
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) error
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

type OrderFilter struct {
	RestaurantID string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// IdempotencyStore remembers which entity a client request token produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, entityID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type Clock func() time.Time

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Menu(ctx context.Context, restaurantID, category string) (domain.Menu, []string, error)
	Table(ctx context.Context, restaurantID, tableNumber string) (*domain.Restaurant, domain.Table, error)
	TableQRCode(ctx context.Context, restaurantID, tableNumber string) ([]byte, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	Advance(ctx context.Context, id string) (*domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, reservation domain.Reservation, token string) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
	SetStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

type DashboardServiceInterface interface {
	Restaurant(ctx context.Context, restaurantID string) (*RestaurantDashboard, error)
	Customer(ctx context.Context, user domain.User) (*CustomerDashboard, error)
}

var (
	_ CatalogServiceInterface     = (*CatalogService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ DashboardServiceInterface   = (*DashboardService)(nil)
)
