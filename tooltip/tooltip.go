package tooltip

import (
	"sync"

	"github.com/google/uuid"
	"github.com/programme-lv/leaderboard/scoring"
)

// Rect is the box of the hovered cell, in whatever unit the front end uses
// (css pixels on the web page, character cells in the terminal).
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Panel is the floating box with participant details. It sits right below
// the anchor, left aligned and exactly as wide.
type Panel struct {
	ID            uuid.UUID
	ParticipantID int
	City          string
	Car           string
	Top           float64
	Left          float64
	Width         float64
}

func NewPanel(p scoring.Participant, anchor Rect) Panel {
	return Panel{
		ID:            uuid.New(),
		ParticipantID: p.ID,
		City:          p.City,
		Car:           p.Car,
		Top:           anchor.Top + anchor.Height,
		Left:          anchor.Left,
		Width:         anchor.Width,
	}
}

// Controller holds at most one visible panel.
type Controller struct {
	mu      sync.Mutex
	current *Panel
}

func NewController() *Controller {
	return &Controller{}
}

// Show replaces whatever panel is visible with one for p.
func (c *Controller) Show(p scoring.Participant, anchor Rect) Panel {
	panel := NewPanel(p, anchor)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &panel
	return panel
}

// Hide removes the visible panel. Hiding with nothing shown does nothing.
func (c *Controller) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

func (c *Controller) Current() (Panel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Panel{}, false
	}
	return *c.current, true
}
