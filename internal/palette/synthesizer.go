package palette

const (
	defaultPrimaryHex   = "#3b82f6"
	defaultSecondaryHex = "#1e40af"
	defaultAccentHex    = "#60a5fa"

	accentScaleFactor = 1.2
)

// Palette is the ordered primary/secondary/accent triple driving a
// preview theme. All three entries are always populated hex strings.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DefaultPalette returns the fixed fallback triple used when an image
// yields no usable colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:   defaultPrimaryHex,
		Secondary: defaultSecondaryHex,
		Accent:    defaultAccentHex,
	}
}

// synthesize turns 0-3 selected colors into a complete palette.
// Three survivors pass through unchanged. Exactly two keep their
// slots and gain an accent brightened from the primary. With one or
// zero survivors the remaining slots take the fixed defaults; a lone
// survivor keeps no contrast guarantee against those defaults, which
// matches the historical behavior of the extraction this replaces.
func synthesize(selected []RGB) Palette {
	switch len(selected) {
	case 3:
		return Palette{
			Primary:   selected[0].Hex(),
			Secondary: selected[1].Hex(),
			Accent:    selected[2].Hex(),
		}
	case 2:
		return Palette{
			Primary:   selected[0].Hex(),
			Secondary: selected[1].Hex(),
			Accent:    brighten(selected[0], accentScaleFactor).Hex(),
		}
	case 1:
		return Palette{
			Primary:   selected[0].Hex(),
			Secondary: defaultSecondaryHex,
			Accent:    defaultAccentHex,
		}
	default:
		return DefaultPalette()
	}
}

func brighten(c RGB, factor float64) RGB {
	return RGB{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}
