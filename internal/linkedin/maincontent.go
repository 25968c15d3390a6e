package linkedin

import (
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

const (
	nameScanWindow     = 5
	headlineScanWindow = 8
	nameFontThreshold  = 14.0
	maxLocationLen     = 80
)

// sectionRange is a classified, header-delimited slice of the main column.
type sectionRange struct {
	section Section
	header  string
	start   int
	end     int
}

// parseMain walks the main column: name, headline/location block, then the
// header-delimited section ranges.
func parseMain(m *cv.Model, lines []layout.Line) {
	if len(lines) == 0 {
		return
	}

	cursor := parseName(m, lines)
	cursor = parseHeadline(m, lines, cursor)

	for _, r := range sectionRanges(lines, cursor) {
		body := filterContentLines(lines[r.start:r.end])
		switch r.section {
		case SectionSummary:
			m.Summary = joinSummary(body)
		case SectionExperience:
			m.Experience = parseExperience(body)
		case SectionEducation:
			m.Education = parseEducation(body)
		case SectionSkills:
			m.Skills = append(m.Skills, parseSkillLines(body)...)
		case SectionLanguages:
			for _, line := range body {
				if text := strings.TrimSpace(line.Text); text != "" {
					m.Languages = append(m.Languages, cv.Language{Name: text})
				}
			}
		case SectionExtras:
			category := ClassifyExtrasCategory(r.header)
			for _, item := range parseExtrasItems(body) {
				m.AddExtrasItem(category, item)
			}
		}
	}
}

// parseName finds the name in the first few lines: the first bold or
// display-size line wins, with line 0 as the fallback. Returns the cursor
// past the consumed name line.
func parseName(m *cv.Model, lines []layout.Line) int {
	limit := nameScanWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if lines[i].Bold || lines[i].FontSize > nameFontThreshold {
			m.Name = strings.TrimSpace(lines[i].Text)
			return i + 1
		}
	}
	m.Name = strings.TrimSpace(lines[0].Text)
	return 1
}

// parseHeadline consumes the lines between the name and the first section
// header. A short comma-carrying line without a year is the location; all
// other lines concatenate into the headline.
func parseHeadline(m *cv.Model, lines []layout.Line, cursor int) int {
	end := cursor + headlineScanWindow
	if end > len(lines) {
		end = len(lines)
	}

	i := cursor
	for ; i < end; i++ {
		text := strings.TrimSpace(lines[i].Text)
		if text == "" || isPageFooter(text) {
			continue
		}
		if isSectionHeader(text) {
			return i
		}
		if m.Location == "" && strings.Contains(text, ",") &&
			len([]rune(text)) < maxLocationLen && !containsYear(text) {
			m.Location = text
			continue
		}
		m.Headline = appendText(m.Headline, text)
	}
	return i
}

// isSectionHeader reports whether the text opens a content section; contact
// headers never appear in the main column and unknown text is body.
func isSectionHeader(text string) bool {
	s := ClassifySection(text)
	return s != SectionUnknown && s != SectionContact
}

// sectionRanges scans from the cursor and slices the remaining lines into
// header-delimited ranges. The final range runs to the end.
func sectionRanges(lines []layout.Line, cursor int) []sectionRange {
	var ranges []sectionRange
	for i := cursor; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i].Text)
		if !isSectionHeader(text) {
			continue
		}
		if n := len(ranges); n > 0 {
			ranges[n-1].end = i
		}
		ranges = append(ranges, sectionRange{
			section: ClassifySection(text),
			header:  text,
			start:   i + 1,
			end:     len(lines),
		})
	}
	return ranges
}

// filterContentLines drops page footers from a section body.
func filterContentLines(lines []layout.Line) []layout.Line {
	out := make([]layout.Line, 0, len(lines))
	for _, line := range lines {
		if isPageFooter(line.Text) {
			continue
		}
		out = append(out, line)
	}
	return out
}
