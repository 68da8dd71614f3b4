package backend

import (
	"testing"
	"time"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := Cell{Text: "é", Style: StyleReverse}
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Errorf("out of bounds should return empty cell, got %+v", got)
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for x, s := range []string{"a", "日", "", "b"} {
		b.SetCell(x, 1, Cell{Text: s})
	}

	if got := b.Row(1); got != "a日b" {
		t.Errorf("Row(1) = %q, want %q", got, "a日b")
	}
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) = %q, want empty", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("Row(5) = %q, want empty", got)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(0, 0, Cell{Text: "X"})
	b.Clear()

	if got := b.GetCell(0, 0); got != EmptyCell() {
		t.Error("cell should be empty after clear")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("expected cursor at (10, 5) visible, got (%d, %d) visible=%v", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 30)

	w, h := b.Size()
	if w != 100 || h != 30 {
		t.Errorf("expected size (100, 30), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("expected resize event 100x30, got %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestNullBackendShutdownUnblocksPoll(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	done := make(chan Event)
	go func() { done <- b.PollEvent() }()

	b.Shutdown()
	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventNone {
			t.Errorf("expected EventNone after shutdown, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Shutdown")
	}
}

func TestNullBackendShows(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()
	b.Show()
	b.Show()
	if b.Shows() != 2 {
		t.Errorf("expected 2 shows, got %d", b.Shows())
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModShift | ModCtrl

	if !mod.Has(ModShift) {
		t.Error("should have Shift")
	}
	if !mod.Has(ModCtrl) {
		t.Error("should have Ctrl")
	}
	if mod.Has(ModAlt) {
		t.Error("should not have Alt")
	}
}

func TestStyleHas(t *testing.T) {
	s := StyleBold | StyleReverse

	if !s.Has(StyleBold) || !s.Has(StyleReverse) {
		t.Error("should have bold and reverse")
	}
	if s.Has(StyleDim) {
		t.Error("should not have dim")
	}
	if !s.Has(StyleBold | StyleReverse) {
		t.Error("should have bold|reverse")
	}
	if s.Has(StyleBold | StyleUnderline) {
		t.Error("should not have bold|underline")
	}
}
