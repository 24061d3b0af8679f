package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tableside/internal/service"
	"tableside/internal/session"
)

// deepLink is where table QR codes point: it opens a session already on the
// table's menu.
func (h *Handler) deepLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	snap, err := h.Sessions.Open(r.Context(), q.Get("restaurant"), q.Get("table"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type openSessionRequest struct {
	Restaurant string `json:"restaurant"`
	Table      string `json:"table"`
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := openSessionRequest{Restaurant: q.Get("restaurant"), Table: q.Get("table")}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	snap, err := h.Sessions.Open(r.Context(), req.Restaurant, req.Table)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Sessions.State(mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Close(mux.Vars(r)["sid"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	var creds service.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := h.Sessions.Authenticate(mux.Vars(r)["sid"], creds)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Sessions.Logout(mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) getSessionDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Sessions.Dashboard(r.Context(), mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

type scanRequest struct {
	RestaurantID string `json:"restaurant_id"`
	TableNumber  string `json:"table_number"`
}

func (h *Handler) scanQR(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := h.Sessions.ScanQR(r.Context(), mux.Vars(r)["sid"], req.RestaurantID, req.TableNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Sessions.Cart(r.Context(), mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.Sessions.AddToCart(r.Context(), vars["sid"], vars["itemId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.Sessions.RemoveFromCart(r.Context(), vars["sid"], vars["itemId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Sessions.PlaceOrder(r.Context(), mux.Vars(r)["sid"], r.Header.Get(idempotencyHeader))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

type startReservationRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

func (h *Handler) startReservation(w http.ResponseWriter, r *http.Request) {
	var req startReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := h.Sessions.StartReservation(r.Context(), mux.Vars(r)["sid"], req.RestaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) getReservationWizard(w http.ResponseWriter, r *http.Request) {
	state, err := h.Sessions.Wizard(mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) updateReservationWizard(w http.ResponseWriter, r *http.Request) {
	var fields session.WizardFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := h.Sessions.UpdateReservation(mux.Vars(r)["sid"], fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) nextReservationStep(w http.ResponseWriter, r *http.Request) {
	state, err := h.Sessions.NextStep(mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) previousReservationStep(w http.ResponseWriter, r *http.Request) {
	state, err := h.Sessions.PreviousStep(mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) confirmReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Sessions.ConfirmReservation(r.Context(), mux.Vars(r)["sid"], r.Header.Get(idempotencyHeader))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
