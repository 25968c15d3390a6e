package linkedin

import (
	"math"
	"sort"

	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

// paragraphGapFactor marks a paragraph break when the vertical gap between
// lines exceeds this multiple of the typical gap.
const paragraphGapFactor = 1.8

// joinSummary assembles the summary text, inserting paragraph breaks where
// the vertical rhythm of the lines clearly breaks, and dehyphenating words
// wrapped across lines.
func joinSummary(lines []layout.Line) string {
	if len(lines) == 0 {
		return ""
	}

	typical := typicalLineGap(lines)

	out := ""
	for i, line := range lines {
		if i == 0 {
			out = appendText(out, line.Text)
			continue
		}
		prev := lines[i-1]
		gap := math.Abs(prev.Y - line.Y)
		if line.Page != prev.Page || (typical > 0 && gap > typical*paragraphGapFactor) {
			out += "\n\n" + appendText("", line.Text)
			continue
		}
		out = appendText(out, line.Text)
	}
	return out
}

// typicalLineGap is the median absolute Y gap between consecutive same-page
// lines; zero when there are no gap samples.
func typicalLineGap(lines []layout.Line) float64 {
	var gaps []float64
	for i := 1; i < len(lines); i++ {
		if lines[i].Page != lines[i-1].Page {
			continue
		}
		gaps = append(gaps, math.Abs(lines[i-1].Y-lines[i].Y))
	}
	if len(gaps) == 0 {
		return 0
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}
