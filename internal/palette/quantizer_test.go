package palette

import "testing"

func TestQuantizeOrdersByFrequency(t *testing.T) {
	t.Parallel()

	red := RGB{R: 255}
	green := RGB{G: 255}
	blue := RGB{B: 255}

	samples := []PixelSample{
		{Color: blue, Alpha: 255},
		{Color: red, Alpha: 255},
		{Color: red, Alpha: 255},
		{Color: green, Alpha: 255},
		{Color: red, Alpha: 255},
		{Color: green, Alpha: 255},
	}

	ordered := quantize(samples, 128)
	want := []RGB{red, green, blue}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d distinct colors, got %d", len(want), len(ordered))
	}
	for index := range want {
		if ordered[index] != want[index] {
			t.Errorf("position %d: expected %v, got %v", index, want[index], ordered[index])
		}
	}
}

func TestQuantizeTiesKeepEncounterOrder(t *testing.T) {
	t.Parallel()

	first := RGB{R: 1}
	second := RGB{R: 2}
	third := RGB{R: 3}

	samples := []PixelSample{
		{Color: first, Alpha: 255},
		{Color: second, Alpha: 255},
		{Color: third, Alpha: 255},
	}

	ordered := quantize(samples, 128)
	want := []RGB{first, second, third}
	for index := range want {
		if ordered[index] != want[index] {
			t.Fatalf("tie order broken at %d: got %v", index, ordered)
		}
	}
}

func TestQuantizeFiltersTransparentSamples(t *testing.T) {
	t.Parallel()

	samples := []PixelSample{
		{Color: RGB{R: 255}, Alpha: 127},
		{Color: RGB{G: 255}, Alpha: 0},
		{Color: RGB{B: 255}, Alpha: 128},
	}

	ordered := quantize(samples, 128)
	if len(ordered) != 1 {
		t.Fatalf("expected only the opaque sample, got %v", ordered)
	}
	if ordered[0] != (RGB{B: 255}) {
		t.Fatalf("unexpected surviving color: %v", ordered[0])
	}
}

func TestQuantizeEmptyInput(t *testing.T) {
	t.Parallel()

	if ordered := quantize(nil, 128); len(ordered) != 0 {
		t.Fatalf("expected empty sequence, got %v", ordered)
	}
}
