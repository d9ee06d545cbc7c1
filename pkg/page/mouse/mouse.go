// Package mouse maps terminal mouse events to named screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.Add(Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Add registers a region. Empty rectangles are ignored.
func (hm *HitMap) Add(r Region) {
	if r.Rect.W <= 0 || r.Rect.H <= 0 {
		return
	}
	hm.regions = append(hm.regions, r)
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			r := hm.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes every region.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the registered regions, bottom first.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is a classified mouse event with the region it hit.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler classifies mouse messages against its hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg. Only left-button presses count as clicks.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.Type = ActionScrollUp
	case msg.Button == tea.MouseButtonWheelDown:
		a.Type = ActionScrollDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.Type = ActionClick
	case msg.Action == tea.MouseActionMotion:
		a.Type = ActionHover
	default:
		return a
	}
	a.Region = h.HitMap.Test(msg.X, msg.Y)
	return a
}

// Clear drops all regions; call before each render.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
