package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"restaurant-reservations/reservation-svc/internal/domain"
	"restaurant-reservations/reservation-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Users        service.UserServiceInterface
	Restaurants  service.RestaurantServiceInterface
	Reservations service.ReservationServiceInterface
	Menus        service.MenuServiceInterface
}

func NewHandler(userSvc service.UserServiceInterface, restSvc service.RestaurantServiceInterface,
	resSvc service.ReservationServiceInterface, menuSvc service.MenuServiceInterface) *Handler {
	return &Handler{
		Users:        userSvc,
		Restaurants:  restSvc,
		Reservations: resSvc,
		Menus:        menuSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.createUser).Methods("POST")
	r.HandleFunc("/api/users", h.getUsers).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.updateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.deleteUser).Methods("DELETE")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations/{id:[0-9]+}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id:[0-9]+}", h.deleteReservation).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id:[0-9]+}/qrcode", h.getReservationQRCode).Methods("GET")

	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/api/menus/{id:[0-9]+}", h.getMenu).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "reservation-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []service.Violation `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

// writeError maps service errors to status codes. resource names the record
// in the 404 message.
func writeError(w http.ResponseWriter, resource string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "validation failed", Errors: verr.Violations})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: resource + " not found"})
	default:
		log.Printf("Error: %s request failed: %v", resource, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
	}
}

func decodeBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return service.NewValidationError("body", "json", "invalid JSON body: "+err.Error())
	}
	return nil
}

// pathID reads the {id} route variable. The route pattern only admits digits;
// ids beyond the INTEGER column range cannot match any row.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return int(id), nil
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.UserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "User", err)
		return
	}
	user, err := h.Users.Create(r.Context(), req)
	if err != nil {
		writeError(w, "User", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeError(w, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		var user *domain.User
		if user, err = h.Users.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, user)
			return
		}
	}
	writeError(w, "User", err)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "User", err)
		return
	}
	var req service.UserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "User", err)
		return
	}
	user, err := h.Users.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Users.Delete(r.Context(), id)
	}
	if err != nil {
		writeError(w, "User", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req service.RestaurantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	rest, err := h.Restaurants.Create(r.Context(), req)
	if err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		var rest *domain.Restaurant
		if rest, err = h.Restaurants.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, rest)
			return
		}
	}
	writeError(w, "Restaurant", err)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	var req service.RestaurantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	rest, err := h.Restaurants.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Restaurants.Delete(r.Context(), id)
	}
	if err != nil {
		writeError(w, "Restaurant", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req service.ReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Reservation", err)
		return
	}
	res, err := h.Reservations.Create(r.Context(), req)
	if err != nil {
		writeError(w, "Reservation", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List(r.Context())
	if err != nil {
		writeError(w, "Reservation", err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		var res *domain.Reservation
		if res, err = h.Reservations.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, res)
			return
		}
	}
	writeError(w, "Reservation", err)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.Reservations.Delete(r.Context(), id)
	}
	if err != nil {
		writeError(w, "Reservation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getReservationQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Reservation", err)
		return
	}
	qrCode, err := h.Reservations.QRCode(r.Context(), id)
	if err != nil {
		writeError(w, "Reservation", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(qrCode); err != nil {
		log.Printf("Warning: failed to write QR code for reservation %d: %v", id, err)
	}
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var req service.MenuRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Menu", err)
		return
	}
	menu, err := h.Menus.Create(r.Context(), req)
	if err != nil {
		writeError(w, "Menu", err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.List(r.Context())
	if err != nil {
		writeError(w, "Menu", err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		var menu *domain.Menu
		if menu, err = h.Menus.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, menu)
			return
		}
	}
	writeError(w, "Menu", err)
}
