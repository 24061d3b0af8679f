package domain

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Upcoming reports whether the reservation still lies ahead of the customer.
func (s ReservationStatus) Upcoming() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
)

// OrderLifecycle lists order statuses in the only order they may be visited.
var OrderLifecycle = []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderServed}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderLifecycle {
		if s == status {
			return true
		}
	}
	return false
}

// Active reports whether the kitchen still has work to do on the order.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderConfirmed || s == OrderPreparing
}
