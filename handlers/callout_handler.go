package handlers

import (
	"sync"
	"time"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
	"go.uber.org/zap"
)

const calloutDismissDelay = 5000 * time.Millisecond

// CalloutPresenter owns the transient call-to-action bubble. It shows on a
// qualifying section change, auto-hides after calloutDismissDelay, and is
// forced hidden whenever the chat panel opens. The generation counter lets
// the client restart its reveal animation and lets a stale timer recognize
// it has been superseded.
type CalloutPresenter struct {
	emit   emitFunc
	logger *zap.Logger

	mu           sync.Mutex
	visible      bool
	generation   int
	timer        *time.Timer
	dismissAfter time.Duration
}

func InitCalloutPresenter(emit emitFunc, logger *zap.Logger) *CalloutPresenter {
	return &CalloutPresenter{
		emit:         emit,
		logger:       logger,
		dismissAfter: calloutDismissDelay,
	}
}

// OnSectionChange reveals the callout for the newly active section. The
// caller only invokes this on an actual change, so re-entering the same
// section never re-triggers. Suppressed entirely while the panel is open.
func (p *CalloutPresenter) OnSectionChange(section models.Section, panelOpen bool) {
	if panelOpen {
		return
	}

	p.mu.Lock()
	p.generation++
	generation := p.generation
	p.visible = true

	// Always cancel the previous timer before scheduling a new one.
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.dismissAfter, func() {
		p.dismiss(generation)
	})
	p.mu.Unlock()

	p.logger.Debug("Callout shown",
		zap.String("section", section.ID),
		zap.Int("generation", generation))

	p.emit("callout_show", models.CalloutNotice{
		Generation: generation,
		Lines:      section.Callout,
		LinkTarget: models.CalloutLinkTarget,
		LinkLabel:  models.CalloutLinkLabel,
		Timestamp:  time.Now(),
	})
}

func (p *CalloutPresenter) dismiss(generation int) {
	p.mu.Lock()
	// A newer callout owns the screen now; this timer is stale.
	if !p.visible || generation != p.generation {
		p.mu.Unlock()
		return
	}
	p.visible = false
	p.mu.Unlock()

	p.emit("callout_hide", map[string]interface{}{"generation": generation})
}

// OnPanelOpen hides the callout immediately and cancels any pending
// dismissal. No callout may show again until the panel closes.
func (p *CalloutPresenter) OnPanelOpen() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	wasVisible := p.visible
	generation := p.generation
	p.visible = false
	p.mu.Unlock()

	if wasVisible {
		p.emit("callout_hide", map[string]interface{}{"generation": generation})
	}
}

func (p *CalloutPresenter) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *CalloutPresenter) Generation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Close stops the pending timer so it cannot fire after the session ends.
func (p *CalloutPresenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
