package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapLayering(t *testing.T) {
	hm := NewHitMap()

	// overlay covers the screen, panel content sits on it, nav sits above both
	hm.AddRect("overlay", 0, 0, 100, 40, nil)
	hm.AddRect("content", 10, 3, 80, 30, nil)
	hm.AddRect("close", 84, 4, 3, 1, nil)
	hm.AddRect("nav", 20, 0, 8, 1, "about")

	tests := []struct {
		x, y int
		want string
	}{
		{85, 4, "close"},
		{50, 10, "content"},
		{5, 10, "overlay"},
		{50, 35, "overlay"},
		{22, 0, "nav"},
	}
	for _, tt := range tests {
		r := hm.Test(tt.x, tt.y)
		if r == nil || r.ID != tt.want {
			t.Errorf("Test(%d, %d) = %v, want %s", tt.x, tt.y, r, tt.want)
		}
	}

	if r := hm.Test(22, 0); r.Data != "about" {
		t.Errorf("nav data = %v, want about", r.Data)
	}
	if r := hm.Test(200, 200); r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapIgnoresEmpty(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("zero", 0, 0, 0, 5, nil)
	if len(hm.Regions()) != 0 {
		t.Errorf("expected empty rect to be ignored, got %d regions", len(hm.Regions()))
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("cta", 10, 10, 30, 1, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "cta" {
		t.Errorf("expected region 'cta', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{X: 25, Y: 10, Action: tea.MouseActionMotion})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown,
	})
	if action.Type != ActionScrollDown {
		t.Errorf("expected ActionScrollDown, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp,
	})
	if action.Type != ActionScrollUp {
		t.Errorf("expected ActionScrollUp, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X: 20, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionNone {
		t.Errorf("release should not count as a click, got %v", action.Type)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
