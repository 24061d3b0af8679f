package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableside/internal/domain"
)

type ReservationService struct {
	repo        ReservationRepository
	restaurants RestaurantRepository
	idempotency IdempotencyStore
	publisher   EventPublisher
	now         Clock

	mu sync.Mutex
}

func NewReservationService(repo ReservationRepository, restaurants RestaurantRepository, idempotency IdempotencyStore, publisher EventPublisher, now Clock) *ReservationService {
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		repo:        repo,
		restaurants: restaurants,
		idempotency: idempotency,
		publisher:   publisher,
		now:         now,
	}
}

// Create stores a reservation produced by the wizard. A repeated token
// returns the reservation stored the first time.
func (s *ReservationService) Create(ctx context.Context, reservation domain.Reservation, token string) (*domain.Reservation, error) {
	if reservation.Guests <= 0 {
		return nil, fmt.Errorf("%w: guests must be positive", ErrInvalidForm)
	}
	if !reservation.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, reservation.Status)
	}
	if _, err := s.restaurants.GetRestaurant(ctx, reservation.RestaurantID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := idempotencyKey("reservation", token)
	if existing, ok := lookupToken(ctx, s.idempotency, key); ok {
		if stored, err := s.repo.GetReservation(ctx, existing); err == nil {
			return stored, nil
		}
	}

	if err := s.repo.CreateReservation(ctx, &reservation); err != nil {
		return nil, err
	}
	rememberToken(ctx, s.idempotency, key, reservation.ID)

	publishEvent(ctx, s.publisher, domain.Event{
		Type:          domain.EventReservationCreated,
		RestaurantID:  reservation.RestaurantID,
		ReservationID: reservation.ID,
		Status:        string(reservation.Status),
		Timestamp:     s.now(),
	})
	return &reservation, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx, filter)
}

func (s *ReservationService) SetStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := TransitionReservation(reservation.Status, status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateReservationStatus(ctx, id, next); err != nil {
		return nil, err
	}
	reservation.Status = next

	publishEvent(ctx, s.publisher, domain.Event{
		Type:          domain.EventReservationStatus,
		RestaurantID:  reservation.RestaurantID,
		ReservationID: reservation.ID,
		Status:        string(next),
		Timestamp:     s.now(),
	})
	return reservation, nil
}
