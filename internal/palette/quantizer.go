package palette

import "sort"

// quantize builds a frequency histogram of the opaque samples and
// returns each distinct color once, ordered by descending count.
// Ties keep the order the colors were first encountered in.
func quantize(samples []PixelSample, alphaThreshold uint8) []RGB {
	counts := make(map[RGB]int)
	ordered := make([]RGB, 0)

	for _, sample := range samples {
		if sample.Alpha < alphaThreshold {
			continue
		}
		if counts[sample.Color] == 0 {
			ordered = append(ordered, sample.Color)
		}
		counts[sample.Color]++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	return ordered
}
