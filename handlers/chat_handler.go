package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
	"github.com/Arbache-Consulting/arbache-go-sdk/utils"
	"go.uber.org/zap"
)

const (
	historyCap      = 6
	maxDisplayLines = 5
	chatTimeout     = 30 * time.Second
)

// ChatController owns the chat side of a widget session: panel visibility,
// the append-only message history, the in-flight request lifecycle and the
// suggestion chips. The current section follows the tracker even while the
// panel is open.
type ChatController struct {
	emit   emitFunc
	logger *zap.Logger
	client *utils.ChatAPIClient

	mu          sync.Mutex
	open        bool
	draft       string
	messages    []models.ChatMessage
	typing      bool
	suggestions []string
	current     models.Section
}

type chatState struct {
	Messages    []models.ChatMessage `json:"messages"`
	Typing      bool                 `json:"typing"`
	Suggestions []string             `json:"suggestions"`
	Draft       string               `json:"draft"`
}

func InitChatController(emit emitFunc, logger *zap.Logger, client *utils.ChatAPIClient) *ChatController {
	hero := models.SectionByID("hero")

	return &ChatController{
		emit:        emit,
		logger:      logger,
		client:      client,
		current:     hero,
		suggestions: hero.Suggestions,
	}
}

// SetSection keeps the controller in sync with the tracker. Default chips
// follow the section only while no conversation is underway.
func (c *ChatController) SetSection(section models.Section) {
	c.mu.Lock()
	c.current = section
	if len(c.messages) == 0 && !c.typing {
		c.suggestions = section.Suggestions
	}
	c.mu.Unlock()
}

func (c *ChatController) SetOpen(open bool) {
	c.mu.Lock()
	c.open = open
	c.mu.Unlock()
}

func (c *ChatController) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *ChatController) SetDraft(text string) {
	c.mu.Lock()
	c.draft = text
	c.mu.Unlock()
}

// SendMessage runs one full chat turn. Effect order is fixed: append the
// user turn, clear the draft, raise typing, clear the chips, resolve the
// answer, append the agent turn, settle the chips, and drop typing last.
// Suggestion chips and typed input both land here.
func (c *ChatController) SendMessage(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{Role: models.RoleUser, Content: trimmed})
	c.draft = ""
	c.typing = true
	c.suggestions = nil
	section := c.current
	history := c.historyLocked()
	c.mu.Unlock()

	c.emitState()

	answer, suggestions := c.resolve(trimmed, section, history)

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{Role: models.RoleAgent, Content: answer})
	if len(suggestions) > 0 {
		c.suggestions = suggestions
	} else {
		c.suggestions = c.current.Suggestions
	}
	c.typing = false
	c.mu.Unlock()

	c.emitState()
}

// resolve produces the agent's reply: an FAQ hit answers locally, otherwise
// exactly one chat API request is issued. Failures of any kind settle to the
// fixed apology message and are logged, never propagated.
func (c *ChatController) resolve(message string, section models.Section, history []utils.ChatTurn) (string, []string) {
	if answer, ok := models.MatchFAQ(message); ok {
		c.logger.Debug("FAQ match, answering without chat API")
		return answer, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	response, err := c.client.SendChat(ctx, &utils.ChatRequest{
		Message:             message,
		Section:             section.ID,
		SectionContext:      section.Context,
		ConversationHistory: history,
	})
	if err != nil {
		c.logger.Error("Chat request failed", zap.Error(err), zap.String("section", section.ID))
		return models.ChatErrorMessage, nil
	}

	answer := response.Response
	if answer == "" {
		answer = models.ChatEmptyResponseMessage
	}

	answer = utils.TruncateLines(utils.CurateResponse(answer), maxDisplayLines)
	return answer, response.Suggestions
}

// historyLocked snapshots the prior turns for the outbound request: the
// just-appended user turn is excluded, the rest is capped to the most recent
// historyCap and relabeled to wire roles. Callers must hold c.mu.
func (c *ChatController) historyLocked() []utils.ChatTurn {
	prior := c.messages[:len(c.messages)-1]
	if len(prior) > historyCap {
		prior = prior[len(prior)-historyCap:]
	}
	if len(prior) == 0 {
		return nil
	}

	turns := make([]utils.ChatTurn, 0, len(prior))
	for _, msg := range prior {
		role := models.RoleUser
		if msg.Role == models.RoleAgent {
			role = models.RoleAssistant
		}
		turns = append(turns, utils.ChatTurn{Role: role, Content: msg.Content})
	}
	return turns
}

func (c *ChatController) emitState() {
	c.mu.Lock()
	state := chatState{
		Messages:    append([]models.ChatMessage(nil), c.messages...),
		Typing:      c.typing,
		Suggestions: append([]string(nil), c.suggestions...),
		Draft:       c.draft,
	}
	c.mu.Unlock()

	c.emit("chat_state", state)
}

// Messages returns a copy of the history.
func (c *ChatController) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

func (c *ChatController) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

func (c *ChatController) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.suggestions...)
}

func (c *ChatController) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// CurrentSection returns the section the controller is synchronized to.
func (c *ChatController) CurrentSection() models.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
