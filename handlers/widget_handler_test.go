package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
	"github.com/Arbache-Consulting/arbache-go-sdk/utils"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// readUntil drains the connection until a message of the wanted type shows
// up, skipping session plumbing like heartbeats.
func readUntil(t *testing.T, conn *websocket.Conn, wantType string) wsEnvelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var env wsEnvelope
		require.NoError(t, conn.ReadJSON(&env), "waiting for %q", wantType)
		if env.Type == wantType {
			return env
		}
		if env.Type == "heartbeat" || env.Type == "pong" {
			continue
		}
		t.Logf("skipping %q while waiting for %q", env.Type, wantType)
	}
}

func dialWidget(t *testing.T, chatBase string) *websocket.Conn {
	t.Helper()

	client := utils.NewChatAPIClient(chatBase)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleWidgetSession(w, r, client)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, msgType string, data interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      msgType,
		"data":      data,
		"timestamp": time.Now(),
	}))
}

func centerOn(id string) models.ViewportUpdate {
	return models.ViewportUpdate{
		Height:   800,
		Sections: []models.SectionRect{{ID: id, Top: 100, Bottom: 700}},
	}
}

func TestWidgetSessionScrollCalloutAndChat(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":"Resposta mock","request_id":"test-123"}`)
	}))
	t.Cleanup(backend.Close)

	conn := dialWidget(t, backend.URL)

	// Scroll ESG into the viewport center.
	sendEvent(t, conn, "viewport", centerOn("esg"))

	env := readUntil(t, conn, "section_changed")
	var update sectionUpdate
	require.NoError(t, json.Unmarshal(env.Data, &update))
	assert.Equal(t, "esg", update.Section.ID)
	assert.Equal(t, "Pergunte sobre ESG...", update.Section.Placeholder)
	assert.Equal(t, models.SectionByID("esg").Suggestions, update.Suggestions)

	env = readUntil(t, conn, "callout_show")
	var notice models.CalloutNotice
	require.NoError(t, json.Unmarshal(env.Data, &notice))
	assert.Equal(t, "Nosso ESG", notice.Lines[0])
	assert.Equal(t, "#contato", notice.LinkTarget)
	assert.Contains(t, strings.ToLower(notice.LinkLabel), "entre em contato")

	// Opening the panel hides the callout immediately.
	sendEvent(t, conn, "open", nil)
	readUntil(t, conn, "callout_hide")
	readUntil(t, conn, "chat_state")

	// Send a message; typing raises then settles with the mock answer.
	sendEvent(t, conn, "chat", map[string]string{"message": "Quero saber mais sobre os programas"})

	env = readUntil(t, conn, "chat_state")
	var pending chatState
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	require.Len(t, pending.Messages, 1)
	assert.True(t, pending.Typing)

	env = readUntil(t, conn, "chat_state")
	var settled chatState
	require.NoError(t, json.Unmarshal(env.Data, &settled))
	require.Len(t, settled.Messages, 2)
	assert.False(t, settled.Typing)
	assert.Equal(t, "Resposta mock", settled.Messages[1].Content)

	// Clean shutdown.
	sendEvent(t, conn, "stop", nil)
	readUntil(t, conn, "stop_confirmation")
}

func TestWidgetSessionCalloutPerSection(t *testing.T) {
	conn := dialWidget(t, "http://127.0.0.1:1")

	expected := map[string]string{
		"hero":    "Tem dúvidas?",
		"esg":     "Nosso ESG",
		"contato": "Dúvidas?",
	}

	for _, id := range []string{"hero", "esg", "contato"} {
		sendEvent(t, conn, "viewport", centerOn(id))

		env := readUntil(t, conn, "callout_show")
		var notice models.CalloutNotice
		require.NoError(t, json.Unmarshal(env.Data, &notice))
		assert.Equal(t, expected[id], notice.Lines[0], id)
	}
}

func TestWidgetSessionNoCalloutWhileOpen(t *testing.T) {
	conn := dialWidget(t, "http://127.0.0.1:1")

	sendEvent(t, conn, "open", nil)
	readUntil(t, conn, "chat_state")

	// Section changes while open still synchronize the chat context but
	// must not produce a callout.
	sendEvent(t, conn, "viewport", centerOn("esg"))
	env := readUntil(t, conn, "section_changed")

	sendEvent(t, conn, "ping", nil)
	env = readUntil(t, conn, "pong")
	_ = env

	sendEvent(t, conn, "viewport", centerOn("contato"))
	readUntil(t, conn, "section_changed")

	sendEvent(t, conn, "ping", nil)

	sawCallout := false
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var env wsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			break
		}
		if env.Type == "callout_show" {
			sawCallout = true
			break
		}
		if env.Type == "pong" {
			break
		}
	}
	assert.False(t, sawCallout)
}
