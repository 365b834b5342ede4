package model

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/mgearhart/clickchess-backend/internal/ws"
)

// The connections for a specific game: one per connected screen.
type GameConnections struct {
	connections map[string]*websocket.Conn // clientID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one board session. Both players share a screen, so there are no
// seats or colors to claim; any connected client may click. The mutex
// serializes clicks into the engine, which is not safe for concurrent use.
type Game struct {
	ID          string
	mu          sync.Mutex
	engine      *Engine
	lastMove    *SimpleMove
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the JSON snapshot pushed to renderers. Board is indexed
// [rank][file] with rank 0 as white's back rank; the client flips for
// drawing.
type GameState struct {
	Board          [8][8]*Piece `json:"board"`
	ToMove         Color        `json:"toMove"`
	SelectedSquare *Coord       `json:"selectedSquare"`
	LegalMoves     []Coord      `json:"legalMoves"`
	LastMove       *SimpleMove  `json:"lastMove"`
	WhiteTimeLeft  int          `json:"whiteTimeLeft"` // tenths of a second
	BlackTimeLeft  int          `json:"blackTimeLeft"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		engine:      NewEngine(),
		connections: NewGameConnections(),
		whiteClock:  NewClock(600 * time.Second),
		blackClock:  NewClock(600 * time.Second),
	}
}

// HandleClick feeds one clicked square into the engine, updates clocks and
// last-move bookkeeping on a commit, and broadcasts the result.
func (g *Game) HandleClick(c Coord) (Event, error) {
	g.mu.Lock()

	event, err := g.engine.HandleClick(c)
	if err != nil {
		g.mu.Unlock()
		return Event{}, err
	}

	if event.Type == EventMoveCommitted {
		g.lastMove = &SimpleMove{From: *event.From, To: *event.To}
		// The mover's clock stops, the new side to move starts.
		switch event.Turn {
		case White:
			g.blackClock.Stop()
			g.whiteClock.Start()
		case Black:
			g.whiteClock.Stop()
			g.blackClock.Start()
		}
	}

	state := g.snapshotLocked()
	g.mu.Unlock()

	go g.broadcast(event, state)
	return event, nil
}

// GetState returns a snapshot of the session for the REST endpoint.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() GameState {
	selected, legalMoves := g.engine.Selection()
	return GameState{
		Board:          g.engine.Squares(),
		ToMove:         g.engine.Turn(),
		SelectedSquare: selected,
		LegalMoves:     legalMoves,
		LastMove:       g.lastMove,
		WhiteTimeLeft:  int(g.whiteClock.TimeLeft().Milliseconds() / 100),
		BlackTimeLeft:  int(g.blackClock.TimeLeft().Milliseconds() / 100),
	}
}

// RegisterConnection attaches a renderer. A reconnect under the same client
// ID replaces the old connection, which is closed.
func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if old, exists := g.connections.connections[clientID]; exists {
		old.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by new connection"),
		)
		old.Close()
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()

	// Send the current state so a fresh screen can draw immediately.
	g.mu.Lock()
	state := g.snapshotLocked()
	g.mu.Unlock()
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: payload,
	})
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, clientID)
}

// broadcast sends the click's event followed by the full state to every
// connected screen. Connections that fail to write are dropped.
func (g *Game) broadcast(event Event, state GameState) {
	eventPayload, err := json.Marshal(event)
	if err != nil {
		fmt.Println("Failed to marshal event to JSON", err)
		return
	}
	statePayload, err := json.Marshal(state)
	if err != nil {
		fmt.Println("Failed to marshal state to JSON", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{Type: ws.MessageTypeEvent, Payload: eventPayload}); err != nil {
			fmt.Println("Failed to send event to client", clientID, err)
			delete(g.connections.connections, clientID)
			continue
		}
		if err := conn.WriteJSON(ws.Message{Type: ws.MessageTypeGameState, Payload: statePayload}); err != nil {
			fmt.Println("Failed to send state to client", clientID, err)
			delete(g.connections.connections, clientID)
		}
	}
}
