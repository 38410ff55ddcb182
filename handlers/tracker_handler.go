package handlers

import (
	"github.com/Arbache-Consulting/arbache-go-sdk/models"
)

// SectionTracker decides which section is active from the rects the client
// reports. It is a registry keyed by section id, so the detection algorithm
// never touches the DOM directly and tests can feed it fake geometry.
//
// Only the session reader goroutine calls it; no locking needed.
type SectionTracker struct {
	order  []string
	known  map[string]bool
	rects  map[string]models.SectionRect
	active string
}

func NewSectionTracker() *SectionTracker {
	known := make(map[string]bool, len(models.SectionOrder))
	for _, id := range models.SectionOrder {
		known[id] = true
	}

	return &SectionTracker{
		order: models.SectionOrder,
		known: known,
		rects: make(map[string]models.SectionRect),
	}
}

// Update ingests one tick of measurements and recomputes the active section:
// the first section in declared order whose rect straddles the viewport
// midpoint wins. Sections missing from the report are skipped; when nothing
// straddles the midpoint the previous section stays active. Returns the
// active section and whether it changed.
func (t *SectionTracker) Update(update models.ViewportUpdate) (models.Section, bool) {
	t.rects = make(map[string]models.SectionRect, len(update.Sections))
	for _, rect := range update.Sections {
		if !t.known[rect.ID] {
			continue
		}
		t.rects[rect.ID] = rect
	}

	midpoint := update.Height / 2
	for _, id := range t.order {
		rect, ok := t.rects[id]
		if !ok {
			continue
		}
		if rect.Top <= midpoint && midpoint < rect.Bottom {
			changed := id != t.active
			t.active = id
			return models.SectionByID(id), changed
		}
	}

	return models.SectionByID(t.active), false
}

// Active returns the current section id, empty before first detection.
func (t *SectionTracker) Active() string {
	return t.active
}

// ActiveSection resolves the current section record, hero before first
// detection.
func (t *SectionTracker) ActiveSection() models.Section {
	return models.SectionByID(t.active)
}
