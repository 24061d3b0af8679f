package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/service"
)

// Snapshot is what a client sees of its session.
type Snapshot struct {
	ID        string             `json:"id"`
	User      *domain.User       `json:"user,omitempty"`
	View      domain.ViewPayload `json:"view"`
	CartCount int                `json:"cart_count"`
}

type CartSummary struct {
	RestaurantID string             `json:"restaurant_id"`
	TableNumber  string             `json:"table_number"`
	Lines        []service.CartLine `json:"lines"`
	Count        int                `json:"count"`
	Total        float64            `json:"total"`
}

type WizardState struct {
	RestaurantID   string                   `json:"restaurant_id"`
	RestaurantName string                   `json:"restaurant_name"`
	Step           int                      `json:"step"`
	StepName       string                   `json:"step_name"`
	StepComplete   bool                     `json:"step_complete"`
	Draft          service.ReservationDraft `json:"draft"`
	AvailableDates []string                 `json:"available_dates"`
	TimeSlots      []string                 `json:"time_slots"`
	GuestOptions   []int                    `json:"guest_options"`
	Reservation    *domain.Reservation      `json:"reservation,omitempty"`
}

// WizardFields carries a partial update; nil fields are left alone.
type WizardFields struct {
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"special_requests"`
}

// Dashboard holds whichever dashboard matches the signed-in role.
type Dashboard struct {
	Role       domain.Role                  `json:"role"`
	Customer   *service.CustomerDashboard   `json:"customer,omitempty"`
	Restaurant *service.RestaurantDashboard `json:"restaurant,omitempty"`
}

type Manager struct {
	store        *Store
	catalog      service.CatalogServiceInterface
	orders       service.OrderServiceInterface
	reservations service.ReservationServiceInterface
	dashboards   service.DashboardServiceInterface
	auth         *service.AuthService
	ids          service.IDGenerator
	now          service.Clock
}

type Deps struct {
	Store        *Store
	Catalog      service.CatalogServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Dashboards   service.DashboardServiceInterface
	Auth         *service.AuthService
	IDs          service.IDGenerator
	Clock        service.Clock
}

func NewManager(d Deps) *Manager {
	now := d.Clock
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:        d.Store,
		catalog:      d.Catalog,
		orders:       d.Orders,
		reservations: d.Reservations,
		dashboards:   d.Dashboards,
		auth:         d.Auth,
		ids:          d.IDs,
		now:          now,
	}
}

// with runs fn while holding the session's lock.
func (m *Manager) with(sid string, fn func(s *Session) error) error {
	sess, err := m.store.Get(sid)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

func snapshot(s *Session) *Snapshot {
	return &Snapshot{
		ID:        s.ID,
		User:      s.User,
		View:      domain.PayloadOf(s.View),
		CartCount: service.CartItemCount(s.Cart),
	}
}

// Open starts a session. A deep link naming a known restaurant and a table
// lands on that table's menu; anything else lands on the landing screen.
func (m *Manager) Open(ctx context.Context, restaurantID, tableNumber string) (*Snapshot, error) {
	sess := m.store.Create()
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if restaurantID != "" && tableNumber != "" {
		_, err := m.catalog.Get(ctx, restaurantID)
		switch {
		case err == nil:
			sess.View = domain.QRMenuView{RestaurantID: restaurantID, TableNumber: tableNumber}
		case errors.Is(err, service.ErrRestaurantNotFound):
			zap.S().Debugw("deep link to unknown restaurant", "restaurant_id", restaurantID)
		default:
			return nil, err
		}
	}
	return snapshot(sess), nil
}

func (m *Manager) State(sid string) (*Snapshot, error) {
	var snap *Snapshot
	err := m.with(sid, func(s *Session) error {
		snap = snapshot(s)
		return nil
	})
	return snap, err
}

func (m *Manager) Close(sid string) error {
	if _, err := m.store.Get(sid); err != nil {
		return err
	}
	m.store.Delete(sid)
	return nil
}

func (m *Manager) Authenticate(sid string, creds service.Credentials) (*Snapshot, error) {
	var snap *Snapshot
	err := m.with(sid, func(s *Session) error {
		user, err := m.auth.Authenticate(creds)
		if err != nil {
			return err
		}
		s.User = user
		s.View = domain.DashboardView{Role: user.Role}
		snap = snapshot(s)
		return nil
	})
	return snap, err
}

// Logout drops the user along with any cart or reservation in progress.
func (m *Manager) Logout(sid string) (*Snapshot, error) {
	var snap *Snapshot
	err := m.with(sid, func(s *Session) error {
		s.User = nil
		s.View = domain.LandingView{}
		s.Cart = service.Cart{}
		s.Wizard = nil
		snap = snapshot(s)
		return nil
	})
	return snap, err
}

func (m *Manager) Dashboard(ctx context.Context, sid string) (*Dashboard, error) {
	var dash *Dashboard
	err := m.with(sid, func(s *Session) error {
		if s.User == nil {
			return ErrNotAuthenticated
		}
		dash = &Dashboard{Role: s.User.Role}
		switch s.User.Role {
		case domain.RoleRestaurant:
			d, err := m.dashboards.Restaurant(ctx, s.User.RestaurantID)
			if err != nil {
				return err
			}
			dash.Restaurant = d
		default:
			d, err := m.dashboards.Customer(ctx, *s.User)
			if err != nil {
				return err
			}
			dash.Customer = d
		}
		return nil
	})
	return dash, err
}

// ScanQR opens a table's menu with a fresh cart.
func (m *Manager) ScanQR(ctx context.Context, sid, restaurantID, tableNumber string) (*Snapshot, error) {
	var snap *Snapshot
	err := m.with(sid, func(s *Session) error {
		if tableNumber == "" {
			return fmt.Errorf("%w: table is required", service.ErrInvalidForm)
		}
		if _, err := m.catalog.Get(ctx, restaurantID); err != nil {
			return err
		}
		s.View = domain.QRMenuView{RestaurantID: restaurantID, TableNumber: tableNumber}
		s.Cart = service.Cart{}
		snap = snapshot(s)
		return nil
	})
	return snap, err
}

func (m *Manager) cartSummary(ctx context.Context, s *Session) (*CartSummary, error) {
	table, err := s.table()
	if err != nil {
		return nil, err
	}
	rest, err := m.catalog.Get(ctx, table.RestaurantID)
	if err != nil {
		return nil, err
	}
	return &CartSummary{
		RestaurantID: table.RestaurantID,
		TableNumber:  table.TableNumber,
		Lines:        service.CartLines(s.Cart, rest.Menu),
		Count:        service.CartItemCount(s.Cart),
		Total:        service.CartTotal(s.Cart, rest.Menu),
	}, nil
}

func (m *Manager) Cart(ctx context.Context, sid string) (*CartSummary, error) {
	var summary *CartSummary
	err := m.with(sid, func(s *Session) (err error) {
		summary, err = m.cartSummary(ctx, s)
		return err
	})
	return summary, err
}

func (m *Manager) AddToCart(ctx context.Context, sid, itemID string) (*CartSummary, error) {
	var summary *CartSummary
	err := m.with(sid, func(s *Session) (err error) {
		table, err := s.table()
		if err != nil {
			return err
		}
		rest, err := m.catalog.Get(ctx, table.RestaurantID)
		if err != nil {
			return err
		}
		if _, ok := rest.Menu.Find(itemID); !ok {
			return fmt.Errorf("%w: %s", service.ErrMenuItemNotFound, itemID)
		}
		s.Cart = service.AddItem(s.Cart, itemID)
		summary, err = m.cartSummary(ctx, s)
		return err
	})
	return summary, err
}

func (m *Manager) RemoveFromCart(ctx context.Context, sid, itemID string) (*CartSummary, error) {
	var summary *CartSummary
	err := m.with(sid, func(s *Session) (err error) {
		if _, err := s.table(); err != nil {
			return err
		}
		s.Cart = service.RemoveItem(s.Cart, itemID)
		summary, err = m.cartSummary(ctx, s)
		return err
	})
	return summary, err
}

// PlaceOrder submits the cart for the session's table and empties it.
func (m *Manager) PlaceOrder(ctx context.Context, sid, token string) (*domain.Order, error) {
	var order *domain.Order
	err := m.with(sid, func(s *Session) (err error) {
		table, err := s.table()
		if err != nil {
			return err
		}
		order, err = m.orders.Place(ctx, service.PlaceOrderRequest{
			RestaurantID: table.RestaurantID,
			TableNumber:  table.TableNumber,
			Cart:         s.Cart,
			Token:        token,
		})
		if err != nil {
			return err
		}
		s.Cart = service.Cart{}
		return nil
	})
	return order, err
}

func (m *Manager) wizardState(w *service.ReservationWizard) *WizardState {
	rest := w.Restaurant()
	state := &WizardState{
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Step:           int(w.Step()),
		StepName:       w.Step().String(),
		StepComplete:   w.StepComplete(),
		Draft:          w.Draft(),
		AvailableDates: service.AvailableDates(m.now()),
		TimeSlots:      service.TimeSlots,
		GuestOptions:   service.GuestOptions(),
	}
	if res, ok := w.Confirmed(); ok {
		state.Reservation = &res
	}
	return state
}

// StartReservation replaces any reservation in progress with a fresh one.
func (m *Manager) StartReservation(ctx context.Context, sid, restaurantID string) (*WizardState, error) {
	var state *WizardState
	err := m.with(sid, func(s *Session) error {
		rest, err := m.catalog.Get(ctx, restaurantID)
		if err != nil {
			return err
		}
		s.Wizard = service.NewReservationWizard(*rest)
		s.View = domain.ReservationView{RestaurantID: rest.ID}
		state = m.wizardState(s.Wizard)
		return nil
	})
	return state, err
}

func (m *Manager) withWizard(sid string, fn func(s *Session, w *service.ReservationWizard) error) (*WizardState, error) {
	var state *WizardState
	err := m.with(sid, func(s *Session) error {
		if s.Wizard == nil {
			return ErrNoActiveWizard
		}
		if err := fn(s, s.Wizard); err != nil {
			return err
		}
		state = m.wizardState(s.Wizard)
		return nil
	})
	return state, err
}

func (m *Manager) Wizard(sid string) (*WizardState, error) {
	return m.withWizard(sid, func(*Session, *service.ReservationWizard) error { return nil })
}

func (m *Manager) UpdateReservation(sid string, fields WizardFields) (*WizardState, error) {
	return m.withWizard(sid, func(_ *Session, w *service.ReservationWizard) error {
		if fields.Date != nil {
			if err := w.SetDate(*fields.Date); err != nil {
				return err
			}
		}
		if fields.Time != nil {
			if err := w.SetTime(*fields.Time); err != nil {
				return err
			}
		}
		if fields.Guests != nil {
			if err := w.SetGuests(*fields.Guests); err != nil {
				return err
			}
		}
		if fields.SpecialRequests != nil {
			w.SetSpecialRequests(*fields.SpecialRequests)
		}
		return nil
	})
}

func (m *Manager) NextStep(sid string) (*WizardState, error) {
	return m.withWizard(sid, func(_ *Session, w *service.ReservationWizard) error {
		return w.Next()
	})
}

func (m *Manager) PreviousStep(sid string) (*WizardState, error) {
	return m.withWizard(sid, func(_ *Session, w *service.ReservationWizard) error {
		return w.Previous()
	})
}

// ConfirmReservation stores the wizard's reservation and returns the session
// to the dashboard, or to the landing screen for guests. Confirming again
// returns the stored reservation.
func (m *Manager) ConfirmReservation(ctx context.Context, sid, token string) (*domain.Reservation, error) {
	var stored *domain.Reservation
	_, err := m.withWizard(sid, func(s *Session, w *service.ReservationWizard) error {
		if prior, ok := w.Confirmed(); ok {
			if existing, err := m.reservations.Get(ctx, prior.ID); err == nil {
				stored = existing
				return nil
			}
		}
		res, err := w.Confirm(s.User, m.ids, m.now())
		if err != nil {
			return err
		}
		stored, err = m.reservations.Create(ctx, res, token)
		if err != nil {
			return err
		}
		if s.User != nil {
			s.View = domain.DashboardView{Role: s.User.Role}
		} else {
			s.View = domain.LandingView{}
		}
		return nil
	})
	return stored, err
}
