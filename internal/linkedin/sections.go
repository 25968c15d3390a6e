// Package linkedin reconstructs a structured CV from the text layer of a
// LinkedIn profile PDF export. All of it is best-effort heuristics over
// positioned lines; misclassification degrades output, it never fails.
package linkedin

import (
	"regexp"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// Section identifies the semantic section a header line opens.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionLanguages  Section = "languages"
	SectionContact    Section = "contact"
	SectionExtras     Section = "extras"
	SectionUnknown    Section = "unknown"
)

// sectionHeaders maps exact (lowercased, trimmed) header text to a section.
// English and Swedish, matching the two export locales LinkedIn produces
// for this product's users.
var sectionHeaders = map[string]Section{
	"summary":                   SectionSummary,
	"about":                     SectionSummary,
	"sammanfattning":            SectionSummary,
	"experience":                SectionExperience,
	"work experience":           SectionExperience,
	"professional experience":   SectionExperience,
	"erfarenhet":                SectionExperience,
	"arbetslivserfarenhet":      SectionExperience,
	"education":                 SectionEducation,
	"utbildning":                SectionEducation,
	"skills":                    SectionSkills,
	"top skills":                SectionSkills,
	"skills & expertise":        SectionSkills,
	"kompetenser":               SectionSkills,
	"främsta kompetenser":       SectionSkills,
	"languages":                 SectionLanguages,
	"språk":                     SectionLanguages,
	"contact":                   SectionContact,
	"contact info":              SectionContact,
	"kontakt":                   SectionContact,
	"kontaktuppgifter":          SectionContact,
	"certifications":            SectionExtras,
	"licenses & certifications": SectionExtras,
	"certifikat":                SectionExtras,
	"licenser och certifikat":   SectionExtras,
	"honors-awards":             SectionExtras,
	"honors & awards":           SectionExtras,
	"utmärkelser":               SectionExtras,
	"publications":              SectionExtras,
	"publikationer":             SectionExtras,
	"volunteer experience":      SectionExtras,
	"volunteering":              SectionExtras,
	"volontärarbete":            SectionExtras,
	"volontärerfarenhet":        SectionExtras,
	"organizations":             SectionExtras,
	"organisationer":            SectionExtras,
	"courses":                   SectionExtras,
	"kurser":                    SectionExtras,
	"projects":                  SectionExtras,
	"projekt":                   SectionExtras,
	"patents":                   SectionExtras,
	"patent":                    SectionExtras,
}

// extrasHeaders maps exact extras header text to its category.
var extrasHeaders = map[string]string{
	"certifications":            cv.ExtrasCertifications,
	"licenses & certifications": cv.ExtrasCertifications,
	"certifikat":                cv.ExtrasCertifications,
	"licenser och certifikat":   cv.ExtrasCertifications,
	"honors-awards":             cv.ExtrasHonors,
	"honors & awards":           cv.ExtrasHonors,
	"utmärkelser":               cv.ExtrasHonors,
	"publications":              cv.ExtrasPublications,
	"publikationer":             cv.ExtrasPublications,
	"volunteer experience":      cv.ExtrasVolunteering,
	"volunteering":              cv.ExtrasVolunteering,
	"volontärarbete":            cv.ExtrasVolunteering,
	"volontärerfarenhet":        cv.ExtrasVolunteering,
	"organizations":             cv.ExtrasOrganizations,
	"organisationer":            cv.ExtrasOrganizations,
	"courses":                   cv.ExtrasCourses,
	"kurser":                    cv.ExtrasCourses,
	"projects":                  cv.ExtrasProjects,
	"projekt":                   cv.ExtrasProjects,
	"patents":                   cv.ExtrasPatents,
	"patent":                    cv.ExtrasPatents,
}

// maxHeaderLen bounds the substring fallback; anything longer is body text.
const maxHeaderLen = 40

// substring fallbacks, checked in order when no exact match hits.
var sectionFallbacks = []struct {
	keyword string
	section Section
}{
	{"certif", SectionExtras},
	{"honor", SectionExtras},
	{"award", SectionExtras},
	{"utmärkel", SectionExtras},
	{"publicat", SectionExtras},
	{"publikation", SectionExtras},
	{"volunt", SectionExtras},
	{"volontär", SectionExtras},
	{"patent", SectionExtras},
	{"kompetens", SectionSkills},
	{"skill", SectionSkills},
	{"erfarenhet", SectionExperience},
	{"experience", SectionExperience},
	{"utbildning", SectionEducation},
	{"education", SectionEducation},
	{"språk", SectionLanguages},
	{"language", SectionLanguages},
	{"sammanfattning", SectionSummary},
	{"summary", SectionSummary},
	{"kontakt", SectionContact},
	{"contact", SectionContact},
}

// extrasCategoryPatterns back the broader fallback used when an extras
// header has no exact table entry.
var extrasCategoryPatterns = []struct {
	re       *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)certif|licens`), cv.ExtrasCertifications},
	{regexp.MustCompile(`(?i)honor|award|utmärkel`), cv.ExtrasHonors},
	{regexp.MustCompile(`(?i)publicat|publikation`), cv.ExtrasPublications},
	{regexp.MustCompile(`(?i)volunt|volontär|ideell`), cv.ExtrasVolunteering},
	{regexp.MustCompile(`(?i)organi[sz]|förening`), cv.ExtrasOrganizations},
	{regexp.MustCompile(`(?i)course|kurs`), cv.ExtrasCourses},
	{regexp.MustCompile(`(?i)project|projekt`), cv.ExtrasProjects},
	{regexp.MustCompile(`(?i)patent`), cv.ExtrasPatents},
}

func normalizeHeader(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ClassifySection maps a line's text to its section. Exact table lookup
// first; short lines then fall back to substring keywords.
func ClassifySection(text string) Section {
	norm := normalizeHeader(text)
	if norm == "" {
		return SectionUnknown
	}
	if section, ok := sectionHeaders[norm]; ok {
		return section
	}
	if len([]rune(norm)) < maxHeaderLen {
		for _, fb := range sectionFallbacks {
			if strings.Contains(norm, fb.keyword) {
				return fb.section
			}
		}
	}
	return SectionUnknown
}

// ClassifyExtrasCategory resolves an extras header to its category,
// defaulting to "other".
func ClassifyExtrasCategory(text string) string {
	norm := normalizeHeader(text)
	if category, ok := extrasHeaders[norm]; ok {
		return category
	}
	for _, p := range extrasCategoryPatterns {
		if p.re.MatchString(norm) {
			return p.category
		}
	}
	return cv.ExtrasOther
}
