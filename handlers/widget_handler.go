package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
	"github.com/Arbache-Consulting/arbache-go-sdk/utils"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// emitFunc pushes one typed event to the client. Split out as a function
// value so the presenters can be exercised against a recording fake.
type emitFunc func(msgType string, data interface{})

// WidgetSession is one page view of the landing page: a websocket connection
// plus the tracker, callout and chat state bound to it. All state dies with
// the connection.
type WidgetSession struct {
	ID         string
	Connection *websocket.Conn
	Logger     *zap.Logger

	Tracker *SectionTracker
	Callout *CalloutPresenter
	Chat    *ChatController

	StartTime time.Time

	writeMu  sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow connections from any origin
	},
}

// WebSocketMessage is the inbound event envelope. Data is decoded per type.
type WebSocketMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type serverMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

type chatPayload struct {
	Message string `json:"message"`
}

type draftPayload struct {
	Text string `json:"text"`
}

type sectionUpdate struct {
	Section     models.Section `json:"section"`
	Suggestions []string       `json:"suggestions"`
}

func NewWidgetSession(id string, conn *websocket.Conn, chatClient *utils.ChatAPIClient) *WidgetSession {
	// Create a logger with session ID context
	logger := zap.L().With(zap.String("session_id", id))

	session := &WidgetSession{
		ID:         id,
		Connection: conn,
		Logger:     logger,
		StartTime:  time.Now(),
		done:       make(chan struct{}),
	}

	session.Tracker = NewSectionTracker()
	session.Callout = InitCalloutPresenter(session.sendWebSocketMessage, logger)
	session.Chat = InitChatController(session.sendWebSocketMessage, logger, chatClient)

	return session
}

// HandleWidgetSession upgrades the request and runs the session until the
// client disconnects or sends stop.
func HandleWidgetSession(w http.ResponseWriter, r *http.Request, chatClient *utils.ChatAPIClient) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("Failed to upgrade to websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	session := NewWidgetSession(sessionID, conn, chatClient)
	session.Logger.Info("New widget session started")

	session.sendWebSocketMessage("session_started", map[string]interface{}{
		"session_id": session.ID,
		"welcome":    models.WelcomeMessage,
		"section":    models.SectionByID("hero"),
	})

	go session.heartbeat()

	session.listen()

	session.Logger.Info("Widget session ended")
	session.Stop()
}

func (s *WidgetSession) listen() {
	for {
		var msg WebSocketMessage
		err := s.Connection.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				s.Logger.Error("WebSocket error", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "viewport":
			s.handleViewport(msg.Data)
		case "open":
			s.handlePanelOpen()
		case "close":
			s.handlePanelClose()
		case "draft":
			s.handleDraft(msg.Data)
		case "chat":
			s.handleChat(msg.Data)
		case "ping":
			s.sendWebSocketMessage("pong", nil)
		case "stop":
			s.Logger.Info("Received stop command from client")
			s.sendWebSocketMessage("stop_confirmation", map[string]interface{}{
				"session_id": s.ID,
				"message":    "Session stopped successfully",
			})
			return
		default:
			s.Logger.Warn("Unknown message type", zap.String("type", msg.Type))
		}
	}
}

// handleViewport is the scroll path: recompute the active section and fan the
// change out. The chat state follows the section even while the panel is
// open; only the callout is gated on the panel.
func (s *WidgetSession) handleViewport(raw json.RawMessage) {
	var update models.ViewportUpdate
	if err := json.Unmarshal(raw, &update); err != nil {
		s.Logger.Error("Invalid viewport payload", zap.Error(err))
		return
	}

	section, changed := s.Tracker.Update(update)
	if !changed {
		return
	}

	s.Logger.Debug("Active section changed", zap.String("section", section.ID))

	s.Chat.SetSection(section)
	s.sendWebSocketMessage("section_changed", sectionUpdate{
		Section:     section,
		Suggestions: section.Suggestions,
	})
	s.Callout.OnSectionChange(section, s.Chat.IsOpen())
}

func (s *WidgetSession) handlePanelOpen() {
	s.Chat.SetOpen(true)
	s.Callout.OnPanelOpen()
	s.Chat.emitState()
}

func (s *WidgetSession) handlePanelClose() {
	// History survives close; only visibility changes.
	s.Chat.SetOpen(false)
	s.Chat.emitState()
}

func (s *WidgetSession) handleDraft(raw json.RawMessage) {
	var payload draftPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.Logger.Error("Invalid draft payload", zap.Error(err))
		return
	}
	s.Chat.SetDraft(payload.Text)
}

func (s *WidgetSession) handleChat(raw json.RawMessage) {
	var payload chatPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.Logger.Error("Invalid chat payload", zap.Error(err))
		return
	}

	// Runs in its own goroutine so viewport events keep flowing while the
	// chat request is in flight.
	go s.Chat.SendMessage(payload.Message)
}

func (s *WidgetSession) heartbeat() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Logger.Debug("Session heartbeat")
			s.sendWebSocketMessage("heartbeat", map[string]interface{}{
				"session_id": s.ID,
				"uptime":     time.Since(s.StartTime).String(),
			})
		case <-s.done:
			return
		}
	}
}

func (s *WidgetSession) sendWebSocketMessage(msgType string, data interface{}) {
	if s.Connection == nil {
		return
	}

	select {
	case <-s.done:
		return
	default:
	}

	msg := serverMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	}

	s.writeMu.Lock()
	err := s.Connection.WriteJSON(msg)
	s.writeMu.Unlock()
	if err != nil {
		s.Logger.Error("Failed to send websocket message", zap.Error(err), zap.String("type", msgType))
	}
}

func (s *WidgetSession) Stop() {
	s.stopOnce.Do(func() {
		s.Logger.Info("Stopping session")
		s.Callout.Close()
		close(s.done)
		if s.Connection != nil {
			s.Connection.Close()
		}
	})
}
