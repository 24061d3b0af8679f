package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableside/internal/domain"
)

type PlaceOrderRequest struct {
	RestaurantID string
	TableNumber  string
	Cart         Cart
	// Token is the client's request token; repeats with the same token
	// return the first order instead of creating another.
	Token string
}

type OrderService struct {
	repo        OrderRepository
	restaurants RestaurantRepository
	idempotency IdempotencyStore
	publisher   EventPublisher
	ids         IDGenerator
	now         Clock

	// mu serializes token lookups with creation.
	mu sync.Mutex
}

func NewOrderService(repo OrderRepository, restaurants RestaurantRepository, idempotency IdempotencyStore, publisher EventPublisher, ids IDGenerator, now Clock) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		repo:        repo,
		restaurants: restaurants,
		idempotency: idempotency,
		publisher:   publisher,
		ids:         ids,
		now:         now,
	}
}

func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A repeated token answers with the first order even though the caller's
	// cart was emptied by it.
	key := idempotencyKey("order", req.Token)
	if existing, ok := s.lookup(ctx, key); ok {
		if order, err := s.repo.GetOrder(ctx, existing); err == nil {
			return order, nil
		}
	}

	if CartItemCount(req.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	rest, err := s.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	order, _ := PlaceOrder(req.Cart, rest.ID, req.TableNumber, rest.Menu, s.ids, s.now())
	if err := s.repo.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}
	s.remember(ctx, key, order.ID)

	s.publish(ctx, domain.Event{
		Type:         domain.EventOrderPlaced,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		TableNumber:  order.TableNumber,
		Status:       string(order.Status),
		Total:        order.Total,
		Timestamp:    order.CreatedAt,
	})
	return &order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

// Advance moves the order one step along its lifecycle.
func (s *OrderService) Advance(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextOrderStatus(order.Status)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, order, next)
}

func (s *OrderService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := TransitionOrder(order.Status, status)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, order, next)
}

func (s *OrderService) apply(ctx context.Context, order *domain.Order, status domain.OrderStatus) (*domain.Order, error) {
	if err := s.repo.UpdateOrderStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	s.publish(ctx, domain.Event{
		Type:         domain.EventOrderStatus,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		TableNumber:  order.TableNumber,
		Status:       string(status),
		Timestamp:    s.now(),
	})
	return order, nil
}

func (s *OrderService) lookup(ctx context.Context, key string) (string, bool) {
	return lookupToken(ctx, s.idempotency, key)
}

func (s *OrderService) remember(ctx context.Context, key, id string) {
	rememberToken(ctx, s.idempotency, key, id)
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	publishEvent(ctx, s.publisher, event)
}

func idempotencyKey(kind, token string) string {
	if token == "" {
		return ""
	}
	return "idempotency:" + kind + ":" + token
}

func lookupToken(ctx context.Context, store IdempotencyStore, key string) (string, bool) {
	if store == nil || key == "" {
		return "", false
	}
	id, ok, err := store.Lookup(ctx, key)
	if err != nil {
		zap.S().Warnw("idempotency lookup failed", "key", key, "error", err)
		return "", false
	}
	return id, ok
}

func rememberToken(ctx context.Context, store IdempotencyStore, key, id string) {
	if store == nil || key == "" {
		return
	}
	if err := store.Remember(ctx, key, id); err != nil {
		zap.S().Warnw("idempotency remember failed", "key", key, "error", err)
	}
}

func publishEvent(ctx context.Context, publisher EventPublisher, event domain.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		zap.S().Warnw("event publish failed", "type", event.Type, "restaurant_id", event.RestaurantID, "error", err)
	}
}
