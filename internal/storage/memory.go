package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableside/internal/domain"
	"tableside/internal/service"
)

// MemoryRepository keeps the catalog, reservations and orders in process
// memory. Slices preserve insertion order; maps index them by id.
type MemoryRepository struct {
	mu sync.RWMutex

	restaurants  []domain.Restaurant
	reservations []domain.Reservation
	orders       []domain.Order

	restaurantIdx  map[string]int
	reservationIdx map[string]int
	orderIdx       map[string]int
}

func NewMemoryRepository(seed SeedData) *MemoryRepository {
	r := &MemoryRepository{
		restaurantIdx:  make(map[string]int),
		reservationIdx: make(map[string]int),
		orderIdx:       make(map[string]int),
	}
	for _, rest := range seed.Restaurants {
		r.restaurantIdx[rest.ID] = len(r.restaurants)
		r.restaurants = append(r.restaurants, cloneRestaurant(rest))
	}
	for _, res := range seed.Reservations {
		r.reservationIdx[res.ID] = len(r.reservations)
		r.reservations = append(r.reservations, res)
	}
	for _, o := range seed.Orders {
		r.orderIdx[o.ID] = len(r.orders)
		r.orders = append(r.orders, cloneOrder(o))
	}
	return r
}

func (r *MemoryRepository) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Restaurant, len(r.restaurants))
	for i, rest := range r.restaurants {
		out[i] = cloneRestaurant(rest)
	}
	return out, nil
}

func (r *MemoryRepository) GetRestaurant(_ context.Context, id string) (*domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.restaurantIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrRestaurantNotFound, id)
	}
	rest := cloneRestaurant(r.restaurants[i])
	return &rest, nil
}

func (r *MemoryRepository) CreateReservation(_ context.Context, reservation *domain.Reservation) error {
	if !reservation.Status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, reservation.Status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurantIdx[reservation.RestaurantID]; !ok {
		return fmt.Errorf("%w: %s", service.ErrRestaurantNotFound, reservation.RestaurantID)
	}
	if _, exists := r.reservationIdx[reservation.ID]; exists {
		return fmt.Errorf("reservation %s already exists", reservation.ID)
	}
	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now()
	}
	r.reservationIdx[reservation.ID] = len(r.reservations)
	r.reservations = append(r.reservations, *reservation)
	return nil
}

func (r *MemoryRepository) GetReservation(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.reservationIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrReservationNotFound, id)
	}
	res := r.reservations[i]
	return &res, nil
}

func (r *MemoryRepository) ListReservations(_ context.Context, filter service.ReservationFilter) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Reservation{}
	for _, res := range r.reservations {
		if filter.RestaurantID != "" && res.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.CustomerID != "" && res.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *MemoryRepository) UpdateReservationStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.reservationIdx[id]
	if !ok {
		return fmt.Errorf("%w: %s", service.ErrReservationNotFound, id)
	}
	r.reservations[i].Status = status
	return nil
}

func (r *MemoryRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	if !order.Status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, order.Status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orderIdx[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	r.orderIdx[order.ID] = len(r.orders)
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}

func (r *MemoryRepository) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.orderIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrOrderNotFound, id)
	}
	o := cloneOrder(r.orders[i])
	return &o, nil
}

func (r *MemoryRepository) ListOrders(_ context.Context, filter service.OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Order{}
	for _, o := range r.orders {
		if filter.RestaurantID != "" && o.RestaurantID != filter.RestaurantID {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *MemoryRepository) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.orderIdx[id]
	if !ok {
		return fmt.Errorf("%w: %s", service.ErrOrderNotFound, id)
	}
	r.orders[i].Status = status
	return nil
}

func cloneRestaurant(rest domain.Restaurant) domain.Restaurant {
	rest.Menu = append(domain.Menu(nil), rest.Menu...)
	rest.Tables = append([]domain.Table(nil), rest.Tables...)
	return rest
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}

// MemoryIdempotencyStore is the in-process stand-in for RedisCache. Entries
// expire after TTL when it is positive.
type MemoryIdempotencyStore struct {
	TTL time.Duration
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]idempotencyEntry
}

type idempotencyEntry struct {
	entityID  string
	expiresAt time.Time
}

func NewMemoryIdempotencyStore(ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		TTL:     ttl,
		Now:     time.Now,
		entries: make(map[string]idempotencyEntry),
	}
}

func (s *MemoryIdempotencyStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !s.Now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.entityID, true, nil
}

func (s *MemoryIdempotencyStore) Remember(_ context.Context, key, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := idempotencyEntry{entityID: entityID}
	if s.TTL > 0 {
		e.expiresAt = s.Now().Add(s.TTL)
	}
	s.entries[key] = e
	return nil
}

var (
	_ service.RestaurantRepository  = (*MemoryRepository)(nil)
	_ service.ReservationRepository = (*MemoryRepository)(nil)
	_ service.OrderRepository       = (*MemoryRepository)(nil)
	_ service.IdempotencyStore      = (*MemoryIdempotencyStore)(nil)
)
