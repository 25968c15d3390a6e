// Package render derives the page-ready view of a CV: the render model is
// the trimmed, grouped, capability-filtered projection of the canonical
// model under a template and the user's display settings.
package render

import "sort"

// Section keys used by capability checks and content policies.
const (
	SectionPhoto      = "photo"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionLanguages  = "languages"
	SectionExtras     = "extras"
)

// Capabilities flags what a template can show at all. Experience and
// education are supported by every template and have no flag.
type Capabilities struct {
	SupportsPhoto          bool `json:"supportsPhoto"`
	SupportsSummary        bool `json:"supportsSummary"`
	SupportsSkills         bool `json:"supportsSkills"`
	SupportsLanguages      bool `json:"supportsLanguages"`
	SupportsExtras         bool `json:"supportsExtras"`
	SupportsSidebar        bool `json:"supportsSidebar"`
	SupportsSecondaryColor bool `json:"supportsSecondaryColor"`
}

// ContentPolicy is a template's page-fitting contract. Priorities rank
// sections for auto-hide, lower values hidden first. Zero caps mean unset.
type ContentPolicy struct {
	PageTarget         int            `json:"pageTarget"`
	HardOnePage        bool           `json:"hardOnePage"`
	Priorities         map[string]int `json:"priorities"`
	MaxExperienceItems int            `json:"maxExperienceItems,omitempty"`
	MaxBulletChars     int            `json:"maxBulletChars,omitempty"`
}

// TemplateMeta is the static configuration of one template.
type TemplateMeta struct {
	ID           string        `json:"id"`
	Capabilities Capabilities  `json:"capabilities"`
	Policy       ContentPolicy `json:"policy"`
}

// defaultPriorities is the hide order shared by the built-in templates:
// extras go first, experience last (and is never force-hidden anyway).
func defaultPriorities() map[string]int {
	return map[string]int{
		SectionExtras:     1,
		SectionLanguages:  2,
		SectionSkills:     3,
		SectionSummary:    4,
		SectionEducation:  4,
		SectionExperience: 5,
	}
}

var templates = map[string]TemplateMeta{
	"classic": {
		ID: "classic",
		Capabilities: Capabilities{
			SupportsSummary:   true,
			SupportsSkills:    true,
			SupportsLanguages: true,
			SupportsExtras:    true,
		},
		Policy: ContentPolicy{
			PageTarget: 1,
			Priorities: defaultPriorities(),
		},
	},
	"sidebar": {
		ID: "sidebar",
		Capabilities: Capabilities{
			SupportsPhoto:          true,
			SupportsSummary:        true,
			SupportsSkills:         true,
			SupportsLanguages:      true,
			SupportsExtras:         true,
			SupportsSidebar:        true,
			SupportsSecondaryColor: true,
		},
		Policy: ContentPolicy{
			PageTarget:     1,
			HardOnePage:    true,
			Priorities:     defaultPriorities(),
			MaxBulletChars: 220,
		},
	},
	"compact": {
		ID: "compact",
		Capabilities: Capabilities{
			SupportsSummary: true,
			SupportsSkills:  true,
		},
		Policy: ContentPolicy{
			PageTarget:         1,
			HardOnePage:        true,
			Priorities:         defaultPriorities(),
			MaxExperienceItems: 4,
			MaxBulletChars:     160,
		},
	},
}

// DefaultTemplateID is used when a document has no template selected.
const DefaultTemplateID = "classic"

// Template looks up a template by id.
func Template(id string) (TemplateMeta, bool) {
	meta, ok := templates[id]
	return meta, ok
}

// TemplateOrDefault resolves the id, falling back to the default template.
func TemplateOrDefault(id string) TemplateMeta {
	if meta, ok := templates[id]; ok {
		return meta
	}
	return templates[DefaultTemplateID]
}

// Templates lists all registered templates in id order.
func Templates() []TemplateMeta {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]TemplateMeta, 0, len(ids))
	for _, id := range ids {
		out = append(out, templates[id])
	}
	return out
}
