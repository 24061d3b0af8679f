package domain

// View is the screen a session is currently on. Each variant carries exactly
// the data its screen needs, so a QR menu can never exist without a table.
type View interface {
	Kind() string
	isView()
}

type LandingView struct{}

type DashboardView struct {
	Role Role
}

type ReservationView struct {
	RestaurantID string
}

type QRMenuView struct {
	RestaurantID string
	TableNumber  string
}

func (LandingView) Kind() string { return "landing" }
func (DashboardView) Kind() string { return "dashboard" }
func (ReservationView) Kind() string { return "reservation" }
func (QRMenuView) Kind() string { return "qr-menu" }

func (LandingView) isView() {}
func (DashboardView) isView() {}
func (ReservationView) isView() {}
func (QRMenuView) isView() {}

// ViewPayload flattens a View for JSON responses.
type ViewPayload struct {
	Kind         string `json:"kind"`
	Role         Role   `json:"role,omitempty"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	TableNumber  string `json:"table_number,omitempty"`
}

func PayloadOf(v View) ViewPayload {
	switch view := v.(type) {
	case DashboardView:
		return ViewPayload{Kind: view.Kind(), Role: view.Role}
	case ReservationView:
		return ViewPayload{Kind: view.Kind(), RestaurantID: view.RestaurantID}
	case QRMenuView:
		return ViewPayload{Kind: view.Kind(), RestaurantID: view.RestaurantID, TableNumber: view.TableNumber}
	case nil:
		return ViewPayload{Kind: LandingView{}.Kind()}
	default:
		return ViewPayload{Kind: v.Kind()}
	}
}
