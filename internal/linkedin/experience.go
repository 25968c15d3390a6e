package linkedin

import (
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

// parseExperience reconstructs work history entries from the experience
// range. LinkedIn prints the employer as one bold line and each role under
// it as another, so two consecutive headers with no date between them mean
// "company, then title"; a header following a dated entry starts the next
// role at the same employer.
func parseExperience(lines []layout.Line) []cv.Experience {
	base := baseFontSize(lines)

	var (
		out             []cv.Experience
		current         *cv.Experience
		lastCompanyName string
	)

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}

		if isHeaderLine(line, base) {
			switch {
			case current != nil && current.StartDate != "":
				out = append(out, *current)
				current = &cv.Experience{Title: text, Company: lastCompanyName}
			case current != nil:
				// Second header with no date between: the first header was
				// the company, this one is the role.
				lastCompanyName = current.Title
				current.Company = current.Title
				current.Title = text
			default:
				current = &cv.Experience{Title: text}
			}
			continue
		}

		if current == nil {
			continue
		}

		if dr := ParseDateRange(text); dr != nil {
			current.StartDate = dr.Start
			current.EndDate = dr.End
			continue
		}
		if isDurationLine(text) {
			continue
		}
		if isBulletLine(text) {
			current.Bullets = append(current.Bullets, stripBullet(text))
			continue
		}
		if current.Location == "" && len(text) < 60 && looksLikeLocation(text) {
			current.Location = text
			continue
		}
		if len(current.Bullets) > 0 {
			// Wrapped continuation of a bulleted block.
			current.Bullets = append(current.Bullets, text)
			continue
		}
		current.Description = appendText(current.Description, text)
	}

	if current != nil {
		out = append(out, *current)
	}
	return out
}
