package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyfare/airline-reservation/internal/models"
	"github.com/skyfare/airline-reservation/internal/service"
	"github.com/skyfare/airline-reservation/internal/websocket"
)

// Handler contains HTTP handlers for the API.
type Handler struct {
	bookingService service.BookingService
}

// NewHandler creates a new Handler instance.
func NewHandler(bookingService service.BookingService) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain and service failures onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, models.ErrReservationNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, models.ErrInvalidCategoryChange):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrInsuranceUnaffordable),
		errors.Is(err, models.ErrPriorityBoardingUnaffordable):
		respondError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, models.ErrReservationConflict),
		errors.Is(err, models.ErrReservationClosed),
		errors.Is(err, models.ErrCapacityExceeded),
		errors.Is(err, models.ErrFlightAlreadyBoarded):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// GetFlights handles GET /api/flights
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights := h.bookingService.GetFlights(r.Context())
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{number}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	flight, err := h.bookingService.GetFlight(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetFlightPassengers handles GET /api/flights/{number}/passengers
func (h *Handler) GetFlightPassengers(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	names, err := h.bookingService.GetFlightPassengers(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, names)
}

// DelayFlight handles POST /api/flights/{number}/delay
func (h *Handler) DelayFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	var req service.DelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.bookingService.DelayFlight(r.Context(), number, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "delayed"})
}

// BoardFlight handles POST /api/flights/{number}/board
func (h *Handler) BoardFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	report, err := h.bookingService.BoardFlight(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	websocket.GetHub().BroadcastBoardingCompleted(number, report.Boarded)
	respondJSON(w, http.StatusOK, report)
}

// CancelFlight handles DELETE /api/flights/{number}
func (h *Handler) CancelFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	if err := h.bookingService.CancelFlight(r.Context(), number); err != nil {
		respondServiceError(w, err)
		return
	}

	websocket.GetHub().BroadcastFlightCancelled(number)
	respondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// InventoryReport handles GET /api/inventory
func (h *Handler) InventoryReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.InventoryReport(r.Context()))
}

// RegisterPassenger handles POST /api/passengers
func (h *Handler) RegisterPassenger(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterPassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Passenger name is required")
		return
	}

	account, err := h.bookingService.RegisterPassenger(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

// GetPassenger handles GET /api/passengers/{id}
func (h *Handler) GetPassenger(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	account, err := h.bookingService.GetPassenger(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// GetPoints handles GET /api/passengers/{id}/points
func (h *Handler) GetPoints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	points, err := h.bookingService.GetPoints(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"points": points})
}

// CheckInPassenger handles POST /api/passengers/{id}/checkin
func (h *Handler) CheckInPassenger(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Terminal == "" {
		respondError(w, http.StatusBadRequest, "Terminal is required")
		return
	}

	if err := h.bookingService.CheckInPassenger(r.Context(), id, req.Terminal); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "checked_in"})
}

// MakeReservation handles POST /api/passengers/{id}/reservations
func (h *Handler) MakeReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightNumber == "" {
		respondError(w, http.StatusBadRequest, "Flight number is required")
		return
	}
	if req.SeatCategory == "" {
		respondError(w, http.StatusBadRequest, "Seat category is required")
		return
	}

	confirmation, err := h.bookingService.MakeReservation(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, confirmation)
}

// ModifyReservation handles PUT /api/passengers/{id}/reservations/{number}
func (h *Handler) ModifyReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req service.ModifyReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SeatCategory == "" {
		respondError(w, http.StatusBadRequest, "Seat category is required")
		return
	}

	if err := h.bookingService.ModifySeatCategory(r.Context(), vars["id"], vars["number"], req.SeatCategory); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "modified"})
}

// CancelReservation handles DELETE /api/passengers/{id}/reservations/{number}
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.bookingService.CancelReservation(r.Context(), vars["id"], vars["number"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
