package palette

import "testing"

func TestSamplePixelsStride(t *testing.T) {
	t.Parallel()

	pix := make([]byte, 0, 40)
	for pixel := 0; pixel < 10; pixel++ {
		pix = append(pix, byte(pixel), 0, 0, 255)
	}

	samples := samplePixels(pix, 3)
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples at stride 3, got %d", len(samples))
	}
	for index, wantR := range []uint8{0, 3, 6, 9} {
		if samples[index].Color.R != wantR {
			t.Errorf("sample %d: expected pixel %d, got %d", index, wantR, samples[index].Color.R)
		}
	}
}

func TestSamplePixelsIgnoresRaggedTail(t *testing.T) {
	t.Parallel()

	pix := []byte{10, 20, 30, 255, 40, 50}
	samples := samplePixels(pix, 1)

	if len(samples) != 1 {
		t.Fatalf("expected trailing partial group to be unread, got %d samples", len(samples))
	}
	if samples[0].Color != (RGB{R: 10, G: 20, B: 30}) || samples[0].Alpha != 255 {
		t.Fatalf("unexpected sample: %+v", samples[0])
	}
}

func TestSamplePixelsEmptyBuffer(t *testing.T) {
	t.Parallel()

	if samples := samplePixels(nil, 10); len(samples) != 0 {
		t.Fatalf("expected no samples from empty buffer, got %d", len(samples))
	}
}
