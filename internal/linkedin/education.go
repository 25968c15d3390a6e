package linkedin

import (
	"regexp"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

// eduAnnotationRe strips the trailing "· (2015 - 2019)" style annotation
// LinkedIn appends to degree lines.
var eduAnnotationRe = regexp.MustCompile(`\s*[·•]?\s*\(([^)]*)\)\s*$`)

// inlineRangeRe finds a date range embedded in a longer line.
var inlineRangeRe = regexp.MustCompile(`(?i)((?:\p{L}+\.?\s+)?\d{4})\s*[-–—]\s*((?:\p{L}+\.?\s+)?\d{4}|present|current|nu|pågående)`)

// parseEducation reconstructs education entries. Headers open a new
// institution; body lines fill degree, field, dates and description in
// that order of preference.
func parseEducation(lines []layout.Line) []cv.Education {
	base := baseFontSize(lines)

	var (
		out     []cv.Education
		current *cv.Education
	)
	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}

		if isHeaderLine(line, base) {
			flush()
			current = &cv.Education{Institution: text}
			continue
		}
		if current == nil {
			continue
		}

		if dr, remainder := extractEducationDates(text); dr != nil {
			current.StartDate = dr.Start
			current.EndDate = dr.End
			if remainder != "" && current.Degree == "" {
				current.Degree, current.Field = splitDegreeField(remainder)
			}
			continue
		}

		stripped := stripEduAnnotation(text)
		switch {
		case current.Degree == "":
			current.Degree, current.Field = splitDegreeField(stripped)
		case current.Field == "" && len(stripped) < 80:
			current.Field = stripped
		default:
			current.Description = appendText(current.Description, text)
		}
	}
	flush()
	return out
}

// extractEducationDates recognizes a date range in the line, whole or
// embedded, returning the range and the text preceding it.
func extractEducationDates(text string) (*DateRange, string) {
	if dr := ParseDateRange(text); dr != nil {
		return dr, ""
	}
	loc := inlineRangeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ""
	}
	candidate := text[loc[0]:loc[1]]
	dr := ParseDateRange(candidate)
	if dr == nil {
		return nil, ""
	}
	remainder := strings.TrimSpace(text[:loc[0]])
	remainder = strings.TrimRight(remainder, "·•-–—,( ")
	return dr, strings.TrimSpace(stripEduAnnotation(remainder))
}

func stripEduAnnotation(text string) string {
	return strings.TrimSpace(eduAnnotationRe.ReplaceAllString(text, ""))
}

// splitDegreeField splits "degree, field" on the first comma.
func splitDegreeField(text string) (degree, field string) {
	parts := strings.SplitN(text, ",", 2)
	degree = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		field = strings.TrimSpace(parts[1])
	}
	return degree, field
}
