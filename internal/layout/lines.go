// Package layout reconstructs logical lines and the sidebar/main column
// split from positioned text fragments.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
)

// yTolerance is the vertical distance within which fragments are considered
// part of the same line.
const yTolerance = 3.0

// Line is a logical merge of fragments sharing a baseline on one page.
type Line struct {
	Text     string
	Bold     bool
	FontSize float64
	Y        float64
	X        float64
	Page     int
}

// BuildLines groups fragments into lines. Fragments are sorted by page, then
// top of page first (PDF y grows upward), then left to right; a run of
// fragments within the y tolerance of the run's first fragment becomes one
// line. Fragments with blank text never open or extend a run.
func BuildLines(fragments []pdftext.Fragment) []Line {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]pdftext.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	var group []pdftext.Fragment
	for _, frag := range sorted {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		if len(group) == 0 {
			group = append(group, frag)
			continue
		}
		first := group[0]
		if frag.Page == first.Page && math.Abs(frag.Y-first.Y) <= yTolerance {
			group = append(group, frag)
			continue
		}
		lines = append(lines, closeGroup(group))
		group = []pdftext.Fragment{frag}
	}
	if len(group) > 0 {
		lines = append(lines, closeGroup(group))
	}
	return lines
}

func closeGroup(group []pdftext.Fragment) Line {
	line := Line{
		Y:        group[0].Y,
		X:        group[0].X,
		Page:     group[0].Page,
		FontSize: group[0].FontSize,
	}
	parts := make([]string, 0, len(group))
	for _, frag := range group {
		parts = append(parts, frag.Text)
		if frag.Bold {
			line.Bold = true
		}
		if frag.FontSize > line.FontSize {
			line.FontSize = frag.FontSize
		}
		if frag.X < line.X {
			line.X = frag.X
		}
	}
	line.Text = strings.TrimSpace(strings.Join(parts, " "))
	return line
}
