package linkedin

import (
	"regexp"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

var (
	emailRe      = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`)
	phoneRe      = regexp.MustCompile(`\+?\d[\d\s()-]{7,}\d`)
	postalRe     = regexp.MustCompile(`\d{3}\s?\d{2}`)
	digitsWordRe = regexp.MustCompile(`\d+\s+\p{L}{2,}`)
	domainRe     = regexp.MustCompile(`\.[a-zA-Z]{2,}(/|$|\s)`)
	linkedInTag  = regexp.MustCompile(`\s*\(LinkedIn\)\s*$`)
)

// sidebarResult accumulates everything the narrow column contributes.
type sidebarResult struct {
	email     string
	phone     string
	location  string
	linkedIn  string
	website   string
	skills    []string
	languages []string
	extras    []cv.ExtrasGroup
}

// parseSidebar folds over sidebar lines. Header lines switch the current
// section (and extras category); all other lines are dispatched by the
// section in effect. Lines before any header are contact candidates.
func parseSidebar(lines []layout.Line) sidebarResult {
	var res sidebarResult
	section := SectionUnknown
	category := cv.ExtrasOther

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" || isPageFooter(text) {
			continue
		}

		if s := ClassifySection(text); s != SectionUnknown {
			section = s
			if s == SectionExtras {
				category = ClassifyExtrasCategory(text)
			}
			continue
		}

		switch section {
		case SectionSkills:
			res.skills = append(res.skills, text)
		case SectionLanguages:
			res.languages = append(res.languages, text)
		case SectionExtras:
			addExtrasItem(&res.extras, category, text)
		default:
			// Contact section, or no header seen yet.
			res.applyContactLine(text)
		}
	}
	return res
}

func addExtrasItem(groups *[]cv.ExtrasGroup, category, item string) {
	for i := range *groups {
		if (*groups)[i].Category == category {
			(*groups)[i].Items = append((*groups)[i].Items, item)
			return
		}
	}
	*groups = append(*groups, cv.ExtrasGroup{Category: category, Items: []string{item}})
}

// applyContactLine extracts contact fields from one line. First match wins
// for every field; later lines never overwrite.
func (r *sidebarResult) applyContactLine(text string) {
	if strings.Contains(strings.ToLower(text), "linkedin.com") {
		if r.linkedIn == "" {
			r.linkedIn = strings.TrimSpace(linkedInTag.ReplaceAllString(text, ""))
		}
		return
	}

	matched := false

	if r.email == "" {
		if m := emailRe.FindString(text); m != "" {
			r.email = m
			matched = true
		}
	}
	if r.phone == "" && !strings.Contains(text, "@") {
		if m := phoneRe.FindString(text); m != "" {
			r.phone = strings.TrimSpace(m)
			matched = true
		}
	}

	if !matched && !strings.Contains(text, "@") && domainRe.MatchString(text) {
		cleaned := strings.TrimSpace(text)
		if strings.Contains(strings.ToLower(cleaned), "linkedin") {
			if r.linkedIn == "" {
				r.linkedIn = cleaned
			}
		} else if r.website == "" {
			r.website = cleaned
		}
		return
	}

	if !matched && r.location == "" {
		if postalRe.MatchString(text) || digitsWordRe.MatchString(text) {
			r.location = text
		}
	}
}
