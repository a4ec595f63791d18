package palette

// selectDistinct walks the frequency-ordered colors and greedily
// accepts up to maxColors entries, each of which must clear the
// contrast ratio against every color accepted before it. The ratio
// bar is deliberately far below the WCAG accessibility threshold;
// it only exists to skip near-duplicate picks.
func selectDistinct(ordered []RGB, maxColors int, minRatio float64) []RGB {
	selected := make([]RGB, 0, maxColors)

	for _, candidate := range ordered {
		if len(selected) >= maxColors {
			break
		}
		if contrastsWithAll(selected, candidate, minRatio) {
			selected = append(selected, candidate)
		}
	}

	return selected
}

func contrastsWithAll(selected []RGB, candidate RGB, minRatio float64) bool {
	for _, existing := range selected {
		if ContrastRatio(existing, candidate) < minRatio {
			return false
		}
	}
	return true
}
