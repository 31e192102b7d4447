package topic

import (
	"testing"
	"time"
)

func TestAcceptsEnumLess(t *testing.T) {
	tp := &Topic{Name: "Status/Power/Pump/Flow", Area: &Range{Min: 0, Max: 256}}
	if !tp.Accepts(9999) {
		t.Fatal("enum-less topic should accept any value, even outside Area")
	}
}

func TestAcceptsEnumByIndexAndLabel(t *testing.T) {
	tp := &Topic{Name: "Status/Operating/Mode", Enum: []string{"Heat", "Cool", "Auto(heat)"}}
	if !tp.Accepts(1) {
		t.Fatal("expected index 1 to be accepted")
	}
	if !tp.Accepts("cool") {
		t.Fatal("expected case-insensitive label match")
	}
	if tp.Accepts(3) {
		t.Fatal("expected out-of-range index to be rejected")
	}
	if tp.Accepts("Unknown") {
		t.Fatal("expected unknown label to be rejected")
	}
}

func TestParseResolvesLabel(t *testing.T) {
	tp := &Topic{Name: "Control/Heatpump/State", Enum: []string{"Off", "On"}}
	idx, err := tp.Parse("on")
	if err != nil || idx != 1 {
		t.Fatalf("Parse(on) = %d, %v, want 1, nil", idx, err)
	}
	if _, err := tp.Parse("Sideways"); err == nil {
		t.Fatal("expected ErrOutOfDomain for unrecognized label")
	}
}

func TestStateUpdateTracksChangeAndPrevious(t *testing.T) {
	s := NewState()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if !s.Update(22.0, t0) {
		t.Fatal("first update should report a change")
	}
	if s.Update(22.0, t0.Add(time.Second)) {
		t.Fatal("identical value should not report a change")
	}

	t1 := t0.Add(10 * time.Second)
	if !s.Update(23.5, t1) {
		t.Fatal("differing value should report a change")
	}
	prev, dur, ok := s.Previous()
	if !ok || prev != 22.0 || dur != 10 {
		t.Fatalf("Previous() = %v, %v, %v, want 22.0, 10, true", prev, dur, ok)
	}
	if s.Value() != 23.5 {
		t.Fatalf("Value() = %v, want 23.5", s.Value())
	}
}

func TestStateDelegation(t *testing.T) {
	s := NewState()
	t0 := time.Now()
	s.Update(1, t0)
	if s.Delegated() {
		t.Fatal("a freshly changed value should not start delegated")
	}
	s.Delegate()
	if !s.Delegated() {
		t.Fatal("Delegate() should mark the value delegated")
	}
	s.Update(2, t0.Add(time.Second))
	if s.Delegated() {
		t.Fatal("a new value should clear delegation")
	}
}
