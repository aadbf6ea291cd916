package console

import (
	"errors"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulated(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(s.Close)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 1; x <= n; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestShowDrawsTitleAndLines(t *testing.T) {
	s, sim := newSimulated(t)

	s.Show("Standby", "s  start running")

	if got := rowText(sim, 0, len("Standby")); got != "Standby" {
		t.Errorf("expected title, got %q", got)
	}
	if got := rowText(sim, 2, len("s  start running")); got != "s  start running" {
		t.Errorf("expected first line, got %q", got)
	}
}

func TestReadKeyReturnsRunes(t *testing.T) {
	s, sim := newSimulated(t)

	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	key, err := s.ReadKey()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if key != 's' {
		t.Errorf("expected 's', got %q", key)
	}
}

func TestReadKeyEscapeEndsInput(t *testing.T) {
	s, sim := newSimulated(t)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if _, err := s.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
