package linkedin

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

var (
	bulletRe     = regexp.MustCompile(`^\s*[•\-\*·]+\s*`)
	pageFooterRe = regexp.MustCompile(`(?i)^page \d+ of \d+$`)
	yearTokenRe  = regexp.MustCompile(`\b\d{4}\b`)
)

// appendText joins wrapped PDF lines. A trailing hyphen on the accumulated
// text marks a word split across lines, so the next segment attaches
// directly; otherwise a single space separates the segments.
func appendText(acc, next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return acc
	}
	if acc == "" {
		return next
	}
	if strings.HasSuffix(acc, "-") {
		return strings.TrimSuffix(acc, "-") + next
	}
	return acc + " " + next
}

// isBulletLine reports whether the line starts with a bullet marker.
func isBulletLine(text string) bool {
	return bulletRe.MatchString(text) && strings.TrimSpace(text) != ""
}

// stripBullet removes a leading bullet marker.
func stripBullet(text string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(text, ""))
}

// isPageFooter matches LinkedIn's "Page N of M" footer lines.
func isPageFooter(text string) bool {
	return pageFooterRe.MatchString(strings.TrimSpace(text))
}

// baseFontSize returns the most frequent font size rounded to the nearest
// 0.5, ties broken toward the smaller value. Headers run larger or bolder
// than this body size.
func baseFontSize(lines []layout.Line) float64 {
	if len(lines) == 0 {
		return 0
	}
	counts := make(map[float64]int)
	for _, line := range lines {
		rounded := math.Round(line.FontSize*2) / 2
		counts[rounded]++
	}
	sizes := make([]float64, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Float64s(sizes)
	best := sizes[0]
	for _, size := range sizes[1:] {
		if counts[size] > counts[best] {
			best = size
		}
	}
	return best
}

// isHeaderLine applies the shared font-weight heuristic: bold or clearly
// larger than the body size, and not a date or duration annotation.
func isHeaderLine(line layout.Line, base float64) bool {
	if !line.Bold && line.FontSize <= base+0.5 {
		return false
	}
	if ParseDateRange(line.Text) != nil {
		return false
	}
	return !isDurationLine(line.Text)
}

// locationKeywords flag place names when no comma is present.
var locationKeywords = []string{
	"sweden", "sverige", "norway", "norge", "denmark", "danmark",
	"finland", "germany", "tyskland", "united states", "united kingdom",
	"netherlands", "nederländerna", "remote", "distans",
	"county", "län", "kommun", "area", "region", "greater",
}

// looksLikeLocation is the loose place-name test used for experience
// sub-lines and the headline block.
func looksLikeLocation(text string) bool {
	if strings.Contains(text, ",") {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range locationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// containsYear reports whether the text carries a 4-digit year.
func containsYear(text string) bool {
	return yearTokenRe.MatchString(text)
}
