package alarm

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone, err := Tone(rate)
	if err != nil {
		t.Fatalf("tone failed: %v", err)
	}

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	want := repeats*rate.N(toneLength) + (repeats-1)*rate.N(gapLength)
	if total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}
