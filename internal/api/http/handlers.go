package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tableside/internal/domain"
	"tableside/internal/service"
	"tableside/internal/session"
)

const idempotencyHeader = "Idempotency-Key"

type Handler struct {
	Catalog      service.CatalogServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Dashboards   service.DashboardServiceInterface
	Sessions     *session.Manager
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, reservations service.ReservationServiceInterface, dashboards service.DashboardServiceInterface, sessions *session.Manager) *Handler {
	return &Handler{
		Catalog:      catalog,
		Orders:       orders,
		Reservations: reservations,
		Dashboards:   dashboards,
		Sessions:     sessions,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/", h.deepLink).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dashboard", h.getRestaurantDashboard).Methods("GET")

	r.HandleFunc("/api/sessions", h.openSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}", h.closeSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{sid}/auth", h.authenticate).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/dashboard", h.getSessionDashboard).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/qr", h.scanQR).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/cart/items/{itemId}", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/sessions/{sid}/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/reservation", h.startReservation).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/reservation", h.getReservationWizard).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/reservation", h.updateReservationWizard).Methods("PUT")
	r.HandleFunc("/api/sessions/{sid}/reservation/next", h.nextReservationStep).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/reservation/previous", h.previousReservationStep).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/reservation/confirm", h.confirmReservation).Methods("POST")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}/status", h.updateReservationStatus).Methods("PATCH")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, categories, err := h.Catalog.Menu(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"items":      menu,
	})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qrCode, err := h.Catalog.TableQRCode(r.Context(), vars["id"], vars["table"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getRestaurantDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Dashboards.Restaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reservations, err := h.Reservations.List(r.Context(), service.ReservationFilter{
		RestaurantID: q.Get("restaurant_id"),
		CustomerID:   q.Get("customer_id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type statusRequest struct {
	Status string `json:"status"`
}

func decodeStatus(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	if req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return "", false
	}
	return req.Status, true
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	res, err := h.Reservations.SetStatus(r.Context(), mux.Vars(r)["id"], domain.ReservationStatus(status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context(), service.OrderFilter{RestaurantID: r.URL.Query().Get("restaurant_id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Advance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.SetStatus(r.Context(), mux.Vars(r)["id"], domain.OrderStatus(status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
