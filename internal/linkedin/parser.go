package linkedin

import (
	"regexp"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
)

// Parse reconstructs a CV model from extracted PDF pages. It is total:
// empty or garbage input yields an empty (or partially filled) model, never
// a panic or error. Accuracy is best-effort; the heuristics target the
// LinkedIn profile export layout in English and Swedish.
func Parse(pages []pdftext.Page) cv.Model {
	m := cv.New()

	sidebarFrags, mainFrags := layout.Split(pages)
	side := parseSidebar(layout.BuildLines(sidebarFrags))
	parseMain(&m, layout.BuildLines(mainFrags))

	m.Email = side.email
	m.Phone = side.phone
	m.LinkedIn = side.linkedIn
	m.Website = side.website
	if m.Location == "" {
		m.Location = side.location
	}

	// Sidebar skills come first; main-column skills were appended by
	// parseMain, so prepend here to keep sidebar order ahead.
	m.Skills = append(side.skills, m.Skills...)

	langs := make([]cv.Language, 0, len(side.languages)+len(m.Languages))
	for _, raw := range side.languages {
		langs = append(langs, normalizeLanguage(raw))
	}
	for _, l := range m.Languages {
		langs = append(langs, normalizeLanguage(l.Name))
	}
	m.Languages = langs

	for _, group := range side.extras {
		for _, item := range group.Items {
			m.AddExtrasItem(group.Category, item)
		}
	}

	return m
}

// langLevelRe captures a trailing parenthesized proficiency annotation.
var langLevelRe = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)\s*$`)

// languageLevels maps LinkedIn proficiency phrases (en/sv) to levels.
var languageLevels = []struct {
	keyword string
	level   string
}{
	{"native", cv.LevelNative},
	{"bilingual", cv.LevelNative},
	{"modersmål", cv.LevelNative},
	{"tvåspråkig", cv.LevelNative},
	{"full professional", cv.LevelFullProfessional},
	{"fullständig yrkeskunskap", cv.LevelFullProfessional},
	{"professional working", cv.LevelProfessionalWorking},
	{"yrkeskunskaper", cv.LevelProfessionalWorking},
	{"limited working", cv.LevelLimitedWorking},
	{"begränsad yrkeskunskap", cv.LevelLimitedWorking},
	{"elementary", cv.LevelElementary},
	{"grundläggande", cv.LevelElementary},
}

// normalizeLanguage turns "English (Native or Bilingual)" into a structured
// entry. Unrecognized annotations leave the level empty.
func normalizeLanguage(raw string) cv.Language {
	raw = strings.TrimSpace(raw)
	m := langLevelRe.FindStringSubmatch(raw)
	if m == nil {
		return cv.Language{Name: raw}
	}
	name := strings.TrimSpace(m[1])
	annotation := strings.ToLower(m[2])
	if name == "" {
		return cv.Language{Name: raw}
	}
	for _, ll := range languageLevels {
		if strings.Contains(annotation, ll.keyword) {
			return cv.Language{Name: name, Level: ll.level}
		}
	}
	return cv.Language{Name: name}
}
