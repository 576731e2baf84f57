package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	coreevents "github.com/cardroom/blackjack/events"
	"github.com/cardroom/blackjack/game"
	"github.com/cardroom/blackjack/server/connection"
	serverevents "github.com/cardroom/blackjack/server/events"
	"github.com/cardroom/blackjack/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Config holds the server's environment configuration
type Config struct {
	Port           string  `env:"PORT" envDefault:"7777"`
	NumDecks       int     `env:"NUM_DECKS" envDefault:"6"`
	NumSpots       int     `env:"NUM_SPOTS" envDefault:"3"`
	MaxPenetration float64 `env:"MAX_PENETRATION" envDefault:"0.75"`
}

// Rules converts the configuration into session rules
func (c Config) Rules() game.Rules {
	return game.Rules{
		NumDecks:       c.NumDecks,
		NumSpots:       c.NumSpots,
		MaxPenetration: c.MaxPenetration,
	}
}

// Server exposes the blackjack lobby over WebSocket and REST
type Server struct {
	config     Config
	lobby      *game.Lobby
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *serverevents.Dispatcher
}

// TableResponse represents a table in API responses
type TableResponse struct {
	ID             string  `json:"id"`
	State          string  `json:"state"`
	NumDecks       int     `json:"numDecks"`
	NumSpots       int     `json:"numSpots"`
	MaxPenetration float64 `json:"maxPenetration"`
	RunningCount   float64 `json:"runningCount"`
	Penetration    float64 `json:"penetration"`
}

// CreateTableRequest represents the request to create a new table
type CreateTableRequest struct {
	NumDecks       int     `json:"numDecks"`
	NumSpots       int     `json:"numSpots"`
	MaxPenetration float64 `json:"maxPenetration"`
}

// NewServer creates a new blackjack WebSocket server
func NewServer(config Config) *Server {
	store := coreevents.NewInMemoryEventStore()
	lobby := game.NewLobby(store)
	connMgr := connection.NewManager()

	dispatcher := serverevents.NewDispatcher(connMgr)
	cmdRouter := handlers.NewCommandRouter(lobby, connMgr)

	// Push every session event to the table's clients
	lobby.AddEventHandler(dispatcher.HandleEvent)

	return &Server{
		config:     config,
		lobby:      lobby,
		connMgr:    connMgr,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
	}
}

// corsMiddleware adds CORS headers to all responses
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

// Start begins the server on the configured port
func (s *Server) Start() error {
	// Start connection manager in its own goroutine
	go s.connMgr.Start()

	r := chi.NewRouter()
	r.Get("/ws", s.handleWebSocket)
	r.Route("/api", func(r chi.Router) {
		r.Use(corsMiddleware)
		r.Get("/tables", s.handleGetTables)
		r.Post("/tables/create", s.handleCreateTable)
	})

	log.Printf("Starting server on port %s", s.config.Port)
	return http.ListenAndServe("0.0.0.0:"+s.config.Port, r)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			log.Printf("Error handling command: %v", err)
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			// Channel closed
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

// handleGetTables returns a list of all tables
func (s *Server) handleGetTables(w http.ResponseWriter, r *http.Request) {
	sessions := s.lobby.Sessions()
	tableResponses := make([]TableResponse, 0, len(sessions))

	for _, session := range sessions {
		tableResponses = append(tableResponses, tableResponse(session))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tableResponses)
}

// handleCreateTable creates a new table
func (s *Server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var createReq CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules := s.config.Rules()
	if createReq.NumDecks > 0 {
		rules.NumDecks = createReq.NumDecks
	}
	if createReq.NumSpots > 0 {
		rules.NumSpots = createReq.NumSpots
	}
	if createReq.MaxPenetration > 0 {
		rules.MaxPenetration = createReq.MaxPenetration
	}

	session, err := s.lobby.CreateSession(rules)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tableResponse(session))
}

func tableResponse(session *game.Session) TableResponse {
	rules := session.Rules()
	table := session.Table()
	return TableResponse{
		ID:             session.ID,
		State:          string(table.State()),
		NumDecks:       rules.NumDecks,
		NumSpots:       rules.NumSpots,
		MaxPenetration: rules.MaxPenetration,
		RunningCount:   table.RunningCount(),
		Penetration:    table.Penetration(),
	}
}
