package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyfare/airline-reservation/internal/handlers"
	"github.com/skyfare/airline-reservation/internal/websocket"
)

// SetupRouter creates and configures the HTTP router.
func SetupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}", h.CancelFlight).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/flights/{number}/passengers", h.GetFlightPassengers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}/delay", h.DelayFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{number}/board", h.BoardFlight).Methods(http.MethodPost, http.MethodOptions)

	// Passengers and reservations
	api.HandleFunc("/passengers", h.RegisterPassenger).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/passengers/{id}", h.GetPassenger).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/passengers/{id}/points", h.GetPoints).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/passengers/{id}/checkin", h.CheckInPassenger).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/passengers/{id}/reservations", h.MakeReservation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/passengers/{id}/reservations/{number}", h.ModifyReservation).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/passengers/{id}/reservations/{number}", h.CancelReservation).Methods(http.MethodDelete, http.MethodOptions)

	// Airline inventory
	api.HandleFunc("/inventory", h.InventoryReport).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket for real-time flight updates
	api.HandleFunc("/flights/{number}/ws", websocket.HandleWebSocket)

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
