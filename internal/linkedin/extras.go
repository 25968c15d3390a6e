package linkedin

import (
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

// parseExtrasItems pulls item titles from an extras range. Titles are the
// bold-or-larger lines; issuer and date sub-lines are body weight and fall
// away. When the range has no distinguishable title lines at all, every
// non-empty line is kept so the section is not lost.
func parseExtrasItems(lines []layout.Line) []string {
	base := baseFontSize(lines)

	var items []string
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		if isHeaderLine(line, base) {
			items = append(items, stripBullet(text))
		}
	}
	if items != nil {
		return items
	}

	for _, line := range lines {
		if text := strings.TrimSpace(line.Text); text != "" {
			items = append(items, stripBullet(text))
		}
	}
	return items
}
