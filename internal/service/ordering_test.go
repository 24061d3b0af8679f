package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
	"tableside/internal/storage"
)

var fixedNow = time.Date(2024, 12, 20, 19, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()
	restaurant := &domain.Restaurant{ID: "1", Name: "Bella Vista", Menu: testMenu}

	tests := []struct {
		name          string
		req           service.PlaceOrderRequest
		prepareMocks  func(repo *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, pub *mocks.EventPublisher)
		expectedID    string
		expectedError error
	}{
		{
			name:          "error_empty_cart",
			req:           service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{}},
			prepareMocks:  func(*mocks.OrderRepository, *mocks.RestaurantRepository, *mocks.IdempotencyStore, *mocks.EventPublisher) {},
			expectedError: service.ErrEmptyCart,
		},
		{
			name: "error_unknown_restaurant",
			req:  service.PlaceOrderRequest{RestaurantID: "9", TableNumber: "3", Cart: service.Cart{"A": 1}},
			prepareMocks: func(_ *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, _ *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "9").Return(nil, fmt.Errorf("%w: 9", service.ErrRestaurantNotFound)).Once()
			},
			expectedError: service.ErrRestaurantNotFound,
		},
		{
			name: "success_without_token",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{"A": 2, "B": 1}},
			prepareMocks: func(repo *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, _ *mocks.IdempotencyStore, pub *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "1").Return(restaurant, nil).Once()
				repo.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.ID == "order-1" && o.Total == 25 && o.Status == domain.OrderPending && len(o.Items) == 2
				})).Return(nil).Once()
				pub.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventOrderPlaced && e.OrderID == "order-1" && e.Total == 25
				})).Return(nil).Once()
			},
			expectedID: "order-1",
		},
		{
			name: "success_first_token_use",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{"A": 1}, Token: "tok"},
			prepareMocks: func(repo *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, pub *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "1").Return(restaurant, nil).Once()
				idem.On("Lookup", ctx, "idempotency:order:tok").Return("", false, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
				idem.On("Remember", ctx, "idempotency:order:tok", "order-1").Return(nil).Once()
				pub.On("Publish", ctx, mock.Anything).Return(nil).Once()
			},
			expectedID: "order-1",
		},
		{
			name: "success_repeated_token_returns_original",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{"A": 1}, Token: "tok"},
			prepareMocks: func(repo *mocks.OrderRepository, _ *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				idem.On("Lookup", ctx, "idempotency:order:tok").Return("order-7", true, nil).Once()
				repo.On("GetOrder", ctx, "order-7").Return(&domain.Order{ID: "order-7", Status: domain.OrderPending}, nil).Once()
			},
			expectedID: "order-7",
		},
		{
			name: "success_repeated_token_after_cart_emptied",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{}, Token: "tok"},
			prepareMocks: func(repo *mocks.OrderRepository, _ *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				idem.On("Lookup", ctx, "idempotency:order:tok").Return("order-7", true, nil).Once()
				repo.On("GetOrder", ctx, "order-7").Return(&domain.Order{ID: "order-7", Status: domain.OrderPending}, nil).Once()
			},
			expectedID: "order-7",
		},
		{
			name: "error_empty_cart_with_unused_token",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{}, Token: "fresh"},
			prepareMocks: func(_ *mocks.OrderRepository, _ *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				idem.On("Lookup", ctx, "idempotency:order:fresh").Return("", false, nil).Once()
			},
			expectedError: service.ErrEmptyCart,
		},
		{
			name: "success_publish_failure_is_not_fatal",
			req:  service.PlaceOrderRequest{RestaurantID: "1", TableNumber: "3", Cart: service.Cart{"B": 1}},
			prepareMocks: func(repo *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, _ *mocks.IdempotencyStore, pub *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "1").Return(restaurant, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
				pub.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectedID: "order-1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			restaurants := mocks.NewRestaurantRepository(t)
			idem := mocks.NewIdempotencyStore(t)
			pub := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, restaurants, idem, pub)

			svc := service.NewOrderService(repo, restaurants, idem, pub, service.NewSequenceGenerator("order-"), fixedClock)
			order, err := svc.Place(ctx, testCase.req)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedID, order.ID)
		})
	}
}

func TestOrderService_Advance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		current        domain.OrderStatus
		expectedStatus domain.OrderStatus
		expectedError  error
	}{
		{name: "pending_to_confirmed", current: domain.OrderPending, expectedStatus: domain.OrderConfirmed},
		{name: "ready_to_served", current: domain.OrderReady, expectedStatus: domain.OrderServed},
		{name: "served_is_terminal", current: domain.OrderServed, expectedError: service.ErrInvalidTransition},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewEventPublisher(t)
			repo.On("GetOrder", ctx, "1").Return(&domain.Order{ID: "1", RestaurantID: "1", Status: testCase.current}, nil).Once()
			if testCase.expectedError == nil {
				repo.On("UpdateOrderStatus", ctx, "1", testCase.expectedStatus).Return(nil).Once()
				pub.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventOrderStatus && e.Status == string(testCase.expectedStatus)
				})).Return(nil).Once()
			}

			svc := service.NewOrderService(repo, nil, nil, pub, service.NewSequenceGenerator("o"), fixedClock)
			order, err := svc.Advance(ctx, "1")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedStatus, order.Status)
		})
	}
}

func TestOrderService_SetStatusRejectsSkip(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", ctx, "1").Return(&domain.Order{ID: "1", Status: domain.OrderPending}, nil).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, service.NewSequenceGenerator("o"), fixedClock)
	_, err := svc.SetStatus(ctx, "1", domain.OrderReady)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestOrderService_SetStatusNotFound(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", ctx, "x").Return(nil, fmt.Errorf("%w: x", service.ErrOrderNotFound)).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, service.NewSequenceGenerator("o"), fixedClock)
	_, err := svc.SetStatus(ctx, "x", domain.OrderConfirmed)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_ConcurrentRepeatedTokenCreatesOneOrder(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository(storage.Seed(fixedNow))
	svc := service.NewOrderService(repo, repo, storage.NewMemoryIdempotencyStore(time.Hour), storage.NopPublisher{},
		service.NewSequenceGenerator("order-"), fixedClock)

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := svc.Place(ctx, service.PlaceOrderRequest{
				RestaurantID: "1", TableNumber: "2", Cart: service.Cart{"1": 2}, Token: "same",
			})
			if assert.NoError(t, err) {
				ids[i] = order.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	orders, err := repo.ListOrders(ctx, service.OrderFilter{RestaurantID: "1"})
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.InDelta(t, 37.98, orders[2].Total, 1e-9)
}
