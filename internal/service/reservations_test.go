package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()
	valid := domain.Reservation{
		ID: "res-1", RestaurantID: "1", RestaurantName: "Bella Vista", CustomerName: "Guest",
		Date: "2024-12-24", Time: "6:00 PM", Guests: 2, Status: domain.ReservationConfirmed,
	}

	tests := []struct {
		name          string
		reservation   domain.Reservation
		token         string
		prepareMocks  func(repo *mocks.ReservationRepository, restaurants *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, pub *mocks.EventPublisher)
		expectedID    string
		expectedError error
	}{
		{
			name:        "success",
			reservation: valid,
			prepareMocks: func(repo *mocks.ReservationRepository, restaurants *mocks.RestaurantRepository, _ *mocks.IdempotencyStore, pub *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "1").Return(&domain.Restaurant{ID: "1"}, nil).Once()
				repo.On("CreateReservation", ctx, mock.Anything).Return(nil).Once()
				pub.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventReservationCreated && e.ReservationID == "res-1"
				})).Return(nil).Once()
			},
			expectedID: "res-1",
		},
		{
			name:        "repeated_token",
			reservation: valid,
			token:       "tok",
			prepareMocks: func(repo *mocks.ReservationRepository, restaurants *mocks.RestaurantRepository, idem *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "1").Return(&domain.Restaurant{ID: "1"}, nil).Once()
				idem.On("Lookup", ctx, "idempotency:reservation:tok").Return("res-0", true, nil).Once()
				repo.On("GetReservation", ctx, "res-0").Return(&domain.Reservation{ID: "res-0"}, nil).Once()
			},
			expectedID: "res-0",
		},
		{
			name: "unknown_restaurant",
			reservation: func() domain.Reservation {
				r := valid
				r.RestaurantID = "42"
				return r
			}(),
			prepareMocks: func(_ *mocks.ReservationRepository, restaurants *mocks.RestaurantRepository, _ *mocks.IdempotencyStore, _ *mocks.EventPublisher) {
				restaurants.On("GetRestaurant", ctx, "42").Return(nil, fmt.Errorf("%w: 42", service.ErrRestaurantNotFound)).Once()
			},
			expectedError: service.ErrRestaurantNotFound,
		},
		{
			name: "no_guests",
			reservation: func() domain.Reservation {
				r := valid
				r.Guests = 0
				return r
			}(),
			prepareMocks: func(*mocks.ReservationRepository, *mocks.RestaurantRepository, *mocks.IdempotencyStore, *mocks.EventPublisher) {},
			expectedError: service.ErrInvalidForm,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReservationRepository(t)
			restaurants := mocks.NewRestaurantRepository(t)
			idem := mocks.NewIdempotencyStore(t)
			pub := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, restaurants, idem, pub)

			svc := service.NewReservationService(repo, restaurants, idem, pub, fixedClock)
			res, err := svc.Create(ctx, testCase.reservation, testCase.token)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedID, res.ID)
		})
	}
}

func TestReservationService_SetStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		current       domain.ReservationStatus
		target        domain.ReservationStatus
		expectedError error
	}{
		{name: "confirm_pending", current: domain.ReservationPending, target: domain.ReservationConfirmed},
		{name: "cancel_pending", current: domain.ReservationPending, target: domain.ReservationCancelled},
		{name: "complete_confirmed", current: domain.ReservationConfirmed, target: domain.ReservationCompleted},
		{name: "reopen_cancelled", current: domain.ReservationCancelled, target: domain.ReservationPending, expectedError: service.ErrInvalidTransition},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReservationRepository(t)
			pub := mocks.NewEventPublisher(t)
			repo.On("GetReservation", ctx, "2").Return(&domain.Reservation{ID: "2", RestaurantID: "2", Status: testCase.current}, nil).Once()
			if testCase.expectedError == nil {
				repo.On("UpdateReservationStatus", ctx, "2", testCase.target).Return(nil).Once()
				pub.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventReservationStatus && e.Status == string(testCase.target)
				})).Return(nil).Once()
			}

			svc := service.NewReservationService(repo, nil, nil, pub, fixedClock)
			res, err := svc.SetStatus(ctx, "2", testCase.target)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.target, res.Status)
		})
	}
}

func TestReservationService_List(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewReservationRepository(t)
	filter := service.ReservationFilter{CustomerID: "u-1"}
	repo.On("ListReservations", ctx, filter).Return([]domain.Reservation{{ID: "1"}}, nil).Once()

	list, err := service.NewReservationService(repo, nil, nil, nil, fixedClock).List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
