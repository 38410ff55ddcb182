package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"

	// RoleAssistant is the wire role used for prior agent turns when
	// replaying conversation history to the chat API.
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in the session's message history. The history is
// append-only and lives only as long as the websocket session.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SectionRect is the measured bounding box of one page section, as reported
// by the client. Only the vertical extent matters for tracking.
type SectionRect struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ViewportUpdate carries one scroll tick worth of measurements: the viewport
// height plus a rect for every registered section currently in the DOM.
// Sections absent from the DOM are simply not reported.
type ViewportUpdate struct {
	Height   float64       `json:"height"`
	Sections []SectionRect `json:"sections"`
}

// CalloutNotice is pushed to the client when the call-to-action bubble should
// appear. Generation increases monotonically per session; the client uses it
// to restart the reveal transition instead of remounting by identity.
type CalloutNotice struct {
	Generation int       `json:"generation"`
	Lines      [3]string `json:"lines"`
	LinkTarget string    `json:"linkTarget"`
	LinkLabel  string    `json:"linkLabel"`
	Timestamp  time.Time `json:"timestamp"`
}
