package layout

import (
	"math"
	"sort"

	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
)

const (
	// columnGap is the minimum horizontal gap between distinct line-start
	// positions that marks the sidebar/main boundary.
	columnGap = 40.0

	// defaultThreshold is used when no column boundary can be detected.
	defaultThreshold = 200.0

	// thresholdInset pulls the detected boundary left so indented sidebar
	// sub-items stay on the sidebar side.
	thresholdInset = 10.0
)

// Split separates fragments into sidebar and main content. The boundary is
// detected on page 1 only; pages two and onward are always main content.
func Split(pages []pdftext.Page) (sidebar, main []pdftext.Fragment) {
	var first []pdftext.Fragment
	for _, page := range pages {
		if page.Number == 1 {
			first = append(first, page.Fragments...)
			continue
		}
		main = append(main, page.Fragments...)
	}

	threshold := ColumnThreshold(first)
	var laterMain []pdftext.Fragment
	laterMain, main = main, nil
	for _, frag := range first {
		if frag.X < threshold {
			sidebar = append(sidebar, frag)
		} else {
			main = append(main, frag)
		}
	}
	main = append(main, laterMain...)
	return sidebar, main
}

// ColumnThreshold locates the x coordinate splitting sidebar from main
// content. It collects the starting x of each visual line, sorts the distinct
// rounded values, and takes the first adjacent pair more than columnGap
// apart; the boundary sits thresholdInset left of the pair's right value.
func ColumnThreshold(fragments []pdftext.Fragment) float64 {
	if len(fragments) == 0 {
		return defaultThreshold
	}

	sorted := make([]pdftext.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > yTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	seen := make(map[int]bool)
	var starts []int
	lastY := math.Inf(1)
	for _, frag := range sorted {
		if math.Abs(frag.Y-lastY) > yTolerance {
			lastY = frag.Y
			x := int(math.Round(frag.X))
			if !seen[x] {
				seen[x] = true
				starts = append(starts, x)
			}
		}
	}
	if len(starts) < 2 {
		return defaultThreshold
	}
	sort.Ints(starts)

	for i := 1; i < len(starts); i++ {
		if float64(starts[i]-starts[i-1]) > columnGap {
			return float64(starts[i]) - thresholdInset
		}
	}
	return defaultThreshold
}
