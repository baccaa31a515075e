package components

import (
	"strings"
	"testing"
)

func TestTracePushCapsHistory(t *testing.T) {
	w := NewTraceWidget(20, 6, "Trace")
	for i := 0; i < traceCapacity+10; i++ {
		w.Push(float64(i), 50)
	}
	if len(w.Cards) != traceCapacity || len(w.Menu) != traceCapacity {
		t.Errorf("Expected history capped at %d, got %d/%d", traceCapacity, len(w.Cards), len(w.Menu))
	}
	if w.Cards[len(w.Cards)-1] != float64(traceCapacity+9) {
		t.Errorf("Expected newest value last, got %f", w.Cards[len(w.Cards)-1])
	}
}

func TestTraceClampsOvershoot(t *testing.T) {
	w := NewTraceWidget(20, 6, "Trace")
	w.Push(-12, 140)
	if w.Cards[0] != 0 {
		t.Errorf("Expected negative offset clamped to 0, got %f", w.Cards[0])
	}
	if w.Menu[0] != 100 {
		t.Errorf("Expected overshoot clamped to 100, got %f", w.Menu[0])
	}
}

func TestTraceView(t *testing.T) {
	w := NewTraceWidget(20, 6, "Motion Trace")
	w.Push(0, 60)
	w.Push(20, 40)
	w.Resize(24, 8)
	if w.Width != 24 || w.Height != 8 {
		t.Errorf("Expected resize to 24x8, got %dx%d", w.Width, w.Height)
	}
	if !strings.Contains(w.View(), "Motion Trace") {
		t.Errorf("Expected title in view")
	}
}
