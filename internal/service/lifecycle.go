package service

import (
	"fmt"

	"tableside/internal/domain"
)

var reservationTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationCompleted},
}

// TransitionReservation validates an operator move from one reservation status to another.
func TransitionReservation(from, to domain.ReservationStatus) (domain.ReservationStatus, error) {
	if !to.Valid() {
		return from, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return to, nil
		}
	}
	return from, fmt.Errorf("%w: reservation %s -> %s", ErrInvalidTransition, from, to)
}

// NextOrderStatus returns the status following current. Served is terminal.
func NextOrderStatus(current domain.OrderStatus) (domain.OrderStatus, error) {
	for i, status := range domain.OrderLifecycle {
		if status != current {
			continue
		}
		if i+1 == len(domain.OrderLifecycle) {
			return current, fmt.Errorf("%w: order already %s", ErrInvalidTransition, current)
		}
		return domain.OrderLifecycle[i+1], nil
	}
	return current, fmt.Errorf("%w: %q", ErrInvalidStatus, current)
}

// TransitionOrder only accepts the single step forward from the current status.
func TransitionOrder(from, to domain.OrderStatus) (domain.OrderStatus, error) {
	if !to.Valid() {
		return from, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	next, err := NextOrderStatus(from)
	if err != nil {
		return from, err
	}
	if next != to {
		return from, fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}
