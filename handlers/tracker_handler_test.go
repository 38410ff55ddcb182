package handlers

import (
	"testing"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewport(height float64, rects ...models.SectionRect) models.ViewportUpdate {
	return models.ViewportUpdate{Height: height, Sections: rects}
}

func TestTrackerDetectsCenteredSection(t *testing.T) {
	for _, id := range models.SectionOrder {
		t.Run(id, func(t *testing.T) {
			tracker := NewSectionTracker()

			section, changed := tracker.Update(viewport(800,
				models.SectionRect{ID: id, Top: 200, Bottom: 600},
			))

			require.True(t, changed)
			assert.Equal(t, id, section.ID)
			assert.Equal(t, id, tracker.Active())
		})
	}
}

func TestTrackerNoChangeOnSameSection(t *testing.T) {
	tracker := NewSectionTracker()

	_, changed := tracker.Update(viewport(800, models.SectionRect{ID: "esg", Top: 0, Bottom: 800}))
	require.True(t, changed)

	section, changed := tracker.Update(viewport(800, models.SectionRect{ID: "esg", Top: -50, Bottom: 750}))
	assert.False(t, changed)
	assert.Equal(t, "esg", section.ID)
}

func TestTrackerKeepsPreviousWhenNothingStraddles(t *testing.T) {
	tracker := NewSectionTracker()

	_, changed := tracker.Update(viewport(800, models.SectionRect{ID: "colabs", Top: 100, Bottom: 700}))
	require.True(t, changed)

	// Everything scrolled below the midpoint.
	section, changed := tracker.Update(viewport(800,
		models.SectionRect{ID: "colabs", Top: 500, Bottom: 900},
		models.SectionRect{ID: "esg", Top: 900, Bottom: 1300},
	))
	assert.False(t, changed)
	assert.Equal(t, "colabs", section.ID)
	assert.Equal(t, "colabs", tracker.Active())
}

func TestTrackerIgnoresUnregisteredIDs(t *testing.T) {
	tracker := NewSectionTracker()

	_, changed := tracker.Update(viewport(800, models.SectionRect{ID: "footer", Top: 0, Bottom: 800}))
	assert.False(t, changed)
	assert.Empty(t, tracker.Active())
}

func TestTrackerDeclarationOrderBreaksTies(t *testing.T) {
	tracker := NewSectionTracker()

	// Both rects straddle the midpoint; hero is declared first.
	section, changed := tracker.Update(viewport(800,
		models.SectionRect{ID: "proposito", Top: 0, Bottom: 800},
		models.SectionRect{ID: "hero", Top: 0, Bottom: 800},
	))

	require.True(t, changed)
	assert.Equal(t, "hero", section.ID)
}

func TestTrackerSkipsAbsentSections(t *testing.T) {
	tracker := NewSectionTracker()

	// Only contato is present in the DOM; the rest are skipped, not errors.
	section, changed := tracker.Update(viewport(800, models.SectionRect{ID: "contato", Top: 300, Bottom: 500}))

	require.True(t, changed)
	assert.Equal(t, "contato", section.ID)
}

func TestTrackerActiveSectionFallsBackToHero(t *testing.T) {
	tracker := NewSectionTracker()

	assert.Empty(t, tracker.Active())
	assert.Equal(t, "hero", tracker.ActiveSection().ID)
}

func TestTrackerMidpointBoundary(t *testing.T) {
	tracker := NewSectionTracker()

	// top ≤ mid < bottom: a rect ending exactly at the midpoint loses to
	// the one starting there.
	section, changed := tracker.Update(viewport(800,
		models.SectionRect{ID: "hero", Top: 0, Bottom: 400},
		models.SectionRect{ID: "proposito", Top: 400, Bottom: 800},
	))

	require.True(t, changed)
	assert.Equal(t, "proposito", section.ID)
}
