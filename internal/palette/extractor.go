package palette

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const paletteSize = 3

var defaultOptions = Options{
	Quality:        10,
	AlphaThreshold: 128,
	MinContrast:    1.5,
}

// Options controls one extraction run.
type Options struct {
	// Quality is the pixel-skip stride: 1 reads every pixel, 10 reads
	// every tenth.
	Quality int `json:"quality"`
	// AlphaThreshold is the alpha value below which a sample counts
	// as transparent and is excluded from the histogram.
	AlphaThreshold int `json:"alphaThreshold"`
	// MinContrast is the pairwise contrast ratio selected colors must
	// clear against each other.
	MinContrast float64 `json:"minContrast"`
}

// DefaultOptions returns the extraction defaults.
func DefaultOptions() Options {
	return defaultOptions
}

func (o Options) normalized() Options {
	normalized := o

	if normalized.Quality <= 0 {
		normalized.Quality = defaultOptions.Quality
	}
	if normalized.AlphaThreshold <= 0 {
		normalized.AlphaThreshold = defaultOptions.AlphaThreshold
	}
	if normalized.AlphaThreshold > 255 {
		normalized.AlphaThreshold = 255
	}
	if normalized.MinContrast <= 1 {
		normalized.MinContrast = defaultOptions.MinContrast
	}

	return normalized
}

// Extractor derives a three-color theme palette from a logo image.
type Extractor struct{}

// NewExtractor returns a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader decodes an image and extracts its palette. The
// caller is expected to have already gated on the upload's declared
// media type; a decode failure here aborts the run with no palette.
func (e *Extractor) ExtractFromReader(reader io.Reader, options Options) (Palette, error) {
	decoded, _, err := image.Decode(reader)
	if err != nil {
		return Palette{}, fmt.Errorf("decode image: %w", err)
	}

	return e.ExtractFromImage(decoded, options)
}

// ExtractFromImage runs the sampling, quantization, contrast
// selection, and synthesis stages on a decoded image. Once decoding
// has succeeded it cannot fail: images with no usable colors fall
// back to the default palette.
func (e *Extractor) ExtractFromImage(img image.Image, options Options) (Palette, error) {
	if img.Bounds().Empty() {
		return Palette{}, errors.New("image has no pixels")
	}
	normalized := options.normalized()

	source := toNRGBA(img)
	samples := samplePixels(source.Pix, normalized.Quality)
	ordered := quantize(samples, uint8(normalized.AlphaThreshold))
	selected := selectDistinct(ordered, paletteSize, normalized.MinContrast)

	return synthesize(selected), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) && nrgba.Stride == nrgba.Bounds().Dx()*4 {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
