package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/labstack/gommon/log"
)

// MessageType represents the type of WebSocket message.
type MessageType string

const (
	MessageTypeFlightDelayed     MessageType = "flight_delayed"
	MessageTypeBoardingCompleted MessageType = "boarding_completed"
	MessageTypeFlightCancelled   MessageType = "flight_cancelled"
)

// Message represents a WebSocket message about a flight.
type Message struct {
	Type          MessageType `json:"type"`
	FlightNumber  string      `json:"flightNumber"`
	Passenger     string      `json:"passenger,omitempty"`
	DepartureTime *time.Time  `json:"departureTime,omitempty"`
	ArrivalTime   *time.Time  `json:"arrivalTime,omitempty"`
	Boarded       []string    `json:"boarded,omitempty"`
	Message       string      `json:"message,omitempty"`
	Timestamp     int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection watching one flight.
type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	flightNumber string
}

// Hub manages WebSocket connections per flight number.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

var globalHub *Hub
var hubOnce sync.Once

// GetHub returns the global hub instance.
func GetHub() *Hub {
	hubOnce.Do(func() {
		globalHub = NewHub()
		go globalHub.Run()
	})
	return globalHub
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightNumber] == nil {
				h.clients[client.flightNumber] = make(map[*Client]bool)
			}
			h.clients[client.flightNumber][client] = true
			log.Infof("websocket: client registered for flight %s (total: %d)", client.flightNumber, len(h.clients[client.flightNumber]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightNumber]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.flightNumber)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Warnf("websocket: failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.FlightNumber]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.FlightNumber], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastFlightDelayed notifies clients watching a flight that its schedule
// changed for the named passenger.
func (h *Hub) BroadcastFlightDelayed(flightNumber, passenger string, departure, arrival time.Time) {
	h.broadcast <- &Message{
		Type:          MessageTypeFlightDelayed,
		FlightNumber:  flightNumber,
		Passenger:     passenger,
		DepartureTime: &departure,
		ArrivalTime:   &arrival,
		Message:       "Flight has been delayed",
		Timestamp:     time.Now().UnixMilli(),
	}
}

// BroadcastBoardingCompleted notifies clients that a flight finished a
// boarding round.
func (h *Hub) BroadcastBoardingCompleted(flightNumber string, boarded []string) {
	h.broadcast <- &Message{
		Type:         MessageTypeBoardingCompleted,
		FlightNumber: flightNumber,
		Boarded:      boarded,
		Message:      "Boarding completed",
		Timestamp:    time.Now().UnixMilli(),
	}
}

// BroadcastFlightCancelled notifies clients that a flight was cancelled.
func (h *Hub) BroadcastFlightCancelled(flightNumber string) {
	h.broadcast <- &Message{
		Type:         MessageTypeFlightCancelled,
		FlightNumber: flightNumber,
		Message:      "Flight has been cancelled",
		Timestamp:    time.Now().UnixMilli(),
	}
}

// GetClientCount returns the number of clients watching a flight.
func (h *Hub) GetClientCount(flightNumber string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightNumber])
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection and subscribes it to a flight's
// event stream.
func HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	flightNumber := mux.Vars(r)["number"]
	if flightNumber == "" {
		http.Error(w, "flight number is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket: upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:          GetHub(),
		conn:         conn,
		send:         make(chan []byte, 16),
		flightNumber: flightNumber,
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
