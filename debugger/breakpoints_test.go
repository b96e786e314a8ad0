package debugger

import "testing"

func TestBreakpointManagerToggleAddsThenRemoves(t *testing.T) {
	m := NewBreakpointManager()

	bp := m.Toggle(5)
	if bp == nil || bp.Line != 5 || !bp.Enabled {
		t.Fatalf("expected a new enabled breakpoint at line 5, got %+v", bp)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}

	removed := m.Toggle(5)
	if removed != nil {
		t.Errorf("expected second toggle to remove the breakpoint, got %+v", removed)
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after removal", m.Count())
	}
}

func TestBreakpointManagerAssignsIncreasingIDs(t *testing.T) {
	m := NewBreakpointManager()

	first := m.Toggle(10)
	second := m.Toggle(20)

	if first.ID == second.ID {
		t.Errorf("expected distinct IDs, got %d and %d", first.ID, second.ID)
	}
}

func TestBreakpointManagerGet(t *testing.T) {
	m := NewBreakpointManager()
	m.Toggle(7)

	bp, ok := m.Get(7)
	if !ok || bp.Line != 7 {
		t.Fatalf("Get(7) = %+v, %v", bp, ok)
	}

	if _, ok := m.Get(99); ok {
		t.Error("expected no breakpoint at line 99")
	}
}

func TestBreakpointManagerRecordHit(t *testing.T) {
	m := NewBreakpointManager()
	m.Toggle(3)

	m.RecordHit(3)
	m.RecordHit(3)

	bp, _ := m.Get(3)
	if bp.HitCount != 2 {
		t.Errorf("HitCount = %d, want 2", bp.HitCount)
	}
}

func TestBreakpointManagerAllIsOrderedByLine(t *testing.T) {
	m := NewBreakpointManager()
	m.Toggle(30)
	m.Toggle(10)
	m.Toggle(20)

	all := m.All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	if all[0].Line != 10 || all[1].Line != 20 || all[2].Line != 30 {
		t.Errorf("expected lines in ascending order, got %v", []uint32{all[0].Line, all[1].Line, all[2].Line})
	}
}

func TestBreakpointManagerClear(t *testing.T) {
	m := NewBreakpointManager()
	m.Toggle(1)
	m.Toggle(2)

	m.Clear()

	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after Clear()", m.Count())
	}
}
