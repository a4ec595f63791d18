package themes

import "github.com/platefront/platefront/internal/palette"

// StarterPalette is a named palette a restaurant can pick before
// uploading a logo. Uploading a logo overwrites whichever starter was
// chosen.
type StarterPalette struct {
	Name    string
	Palette palette.Palette
}

var starterPalettes = []StarterPalette{
	{
		Name: "classic-blue",
		Palette: palette.Palette{
			Primary:   "#3b82f6",
			Secondary: "#1e40af",
			Accent:    "#60a5fa",
		},
	},
	{
		Name: "trattoria",
		Palette: palette.Palette{
			Primary:   "#b91c1c",
			Secondary: "#166534",
			Accent:    "#fbbf24",
		},
	},
	{
		Name: "bistro-noir",
		Palette: palette.Palette{
			Primary:   "#1f2937",
			Secondary: "#9ca3af",
			Accent:    "#d97706",
		},
	},
	{
		Name: "seaside",
		Palette: palette.Palette{
			Primary:   "#0e7490",
			Secondary: "#164e63",
			Accent:    "#fb923c",
		},
	},
	{
		Name: "orchard",
		Palette: palette.Palette{
			Primary:   "#15803d",
			Secondary: "#3f6212",
			Accent:    "#f59e0b",
		},
	},
	{
		Name: "rose-quartz",
		Palette: palette.Palette{
			Primary:   "#e11d48",
			Secondary: "#64748b",
			Accent:    "#f472b6",
		},
	},
}

// GetStarterPalette returns a starter palette by name, or nil when the
// name is unknown.
func GetStarterPalette(name string) *StarterPalette {
	for index := range starterPalettes {
		if starterPalettes[index].Name == name {
			return &starterPalettes[index]
		}
	}
	return nil
}

// ListStarterPalettes returns all starter palettes in display order.
func ListStarterPalettes() []StarterPalette {
	listed := make([]StarterPalette, len(starterPalettes))
	copy(listed, starterPalettes)
	return listed
}
