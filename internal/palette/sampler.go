package palette

// PixelSample is one RGBA reading from a decoded pixel buffer.
type PixelSample struct {
	Color RGB
	Alpha uint8
}

// samplePixels reads every quality-th pixel from a flat RGBA byte
// buffer. Trailing bytes that do not fill a whole 4-byte group are
// left unread.
func samplePixels(pix []byte, quality int) []PixelSample {
	if quality < 1 {
		quality = 1
	}

	step := 4 * quality
	samples := make([]PixelSample, 0, len(pix)/step+1)
	for offset := 0; offset+4 <= len(pix); offset += step {
		samples = append(samples, PixelSample{
			Color: RGB{R: pix[offset], G: pix[offset+1], B: pix[offset+2]},
			Alpha: pix[offset+3],
		})
	}

	return samples
}
