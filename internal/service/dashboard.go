package service

import (
	"context"
	"math"
	"time"

	"tableside/internal/domain"
)

type RestaurantDashboard struct {
	Restaurant          *domain.Restaurant   `json:"restaurant"`
	TodayReservations   []domain.Reservation `json:"today_reservations"`
	PendingReservations []domain.Reservation `json:"pending_reservations"`
	ActiveOrders        []domain.Order       `json:"active_orders"`
	TodayRevenue        float64              `json:"today_revenue"`
	OccupancyPercent    int                  `json:"occupancy_percent"`
	Reservations        []domain.Reservation `json:"reservations"`
	Orders              []domain.Order       `json:"orders"`
}

type CustomerDashboard struct {
	User          domain.User          `json:"user"`
	Upcoming      []domain.Reservation `json:"upcoming"`
	Past          []domain.Reservation `json:"past"`
	LoyaltyPoints int                  `json:"loyalty_points"`
}

type DashboardService struct {
	restaurants  RestaurantRepository
	reservations ReservationRepository
	orders       OrderRepository
	now          Clock
}

func NewDashboardService(restaurants RestaurantRepository, reservations ReservationRepository, orders OrderRepository, now Clock) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		restaurants:  restaurants,
		reservations: reservations,
		orders:       orders,
		now:          now,
	}
}

func (s *DashboardService) Restaurant(ctx context.Context, restaurantID string) (*RestaurantDashboard, error) {
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.ListReservations(ctx, ReservationFilter{RestaurantID: rest.ID})
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx, OrderFilter{RestaurantID: rest.ID})
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)
	dash := &RestaurantDashboard{
		Restaurant:          rest,
		TodayReservations:   []domain.Reservation{},
		PendingReservations: []domain.Reservation{},
		ActiveOrders:        []domain.Order{},
		Reservations:        reservations,
		Orders:              orders,
	}
	for _, r := range reservations {
		if r.Date == today {
			dash.TodayReservations = append(dash.TodayReservations, r)
		}
		if r.Status == domain.ReservationPending {
			dash.PendingReservations = append(dash.PendingReservations, r)
		}
	}
	for _, o := range orders {
		if o.Status.Active() {
			dash.ActiveOrders = append(dash.ActiveOrders, o)
		}
		if o.CreatedAt.In(now.Location()).Format(dateLayout) == today {
			dash.TodayRevenue += o.Total
		}
	}
	if rest.Capacity > 0 {
		dash.OccupancyPercent = int(math.Round(float64(len(dash.TodayReservations)) / float64(rest.Capacity) * 100))
	}
	return dash, nil
}

// Customer splits the user's reservations into upcoming (pending or
// confirmed) and past (completed). Cancelled ones appear in neither.
func (s *DashboardService) Customer(ctx context.Context, user domain.User) (*CustomerDashboard, error) {
	reservations, err := s.reservations.ListReservations(ctx, ReservationFilter{CustomerID: user.ID})
	if err != nil {
		return nil, err
	}
	dash := &CustomerDashboard{
		User:     user,
		Upcoming: []domain.Reservation{},
		Past:     []domain.Reservation{},
	}
	if user.LoyaltyPoints != nil {
		dash.LoyaltyPoints = *user.LoyaltyPoints
	}
	for _, r := range reservations {
		switch {
		case r.Status.Upcoming():
			dash.Upcoming = append(dash.Upcoming, r)
		case r.Status == domain.ReservationCompleted:
			dash.Past = append(dash.Past, r)
		}
	}
	return dash, nil
}
