// Package cv defines the canonical structured resume data model produced by
// the LinkedIn import pipeline and consumed by the render pipeline.
package cv

import "strings"

// Language proficiency levels, mirroring LinkedIn's scale.
const (
	LevelNative              = "native"
	LevelFullProfessional    = "full_professional"
	LevelProfessionalWorking = "professional_working"
	LevelLimitedWorking      = "limited_working"
	LevelElementary          = "elementary"
)

// Extras categories form a closed set; groups are keyed by one of these.
const (
	ExtrasCertifications = "certifications"
	ExtrasHonors         = "honors"
	ExtrasPublications   = "publications"
	ExtrasVolunteering   = "volunteering"
	ExtrasOrganizations  = "organizations"
	ExtrasCourses        = "courses"
	ExtrasProjects       = "projects"
	ExtrasPatents        = "patents"
	ExtrasOther          = "other"
)

// Model is the canonical resume payload. Every list preserves insertion
// order, which is also display order.
type Model struct {
	Name               string             `json:"name"`
	Headline           string             `json:"headline"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Location           string             `json:"location"`
	LinkedIn           string             `json:"linkedIn"`
	Website            string             `json:"website"`
	Photo              string             `json:"photo"`
	Summary            string             `json:"summary"`
	Experience         []Experience       `json:"experience"`
	Education          []Education        `json:"education"`
	Skills             []string           `json:"skills"`
	Languages          []Language         `json:"languages"`
	Extras             []ExtrasGroup      `json:"extras"`
	SectionsVisibility SectionsVisibility `json:"sectionsVisibility"`
}

// Experience is a single work history entry. Entries sharing a non-empty
// CompanyGroupID render as one employer block with multiple roles.
type Experience struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Description    string   `json:"description"`
	Bullets        []string `json:"bullets"`
	Hidden         bool     `json:"hidden"`
	CompanyGroupID string   `json:"companyGroupId,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden"`
}

// Language pairs a language name with a proficiency level. Level may be
// empty when the source PDF carried no level information.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// ExtrasGroup holds the items of one extras category. Categories are unique
// within a model.
type ExtrasGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SectionsVisibility carries the user's per-section toggles. The zero value
// hides everything, so use DefaultSectionsVisibility for new models.
type SectionsVisibility struct {
	Photo      bool `json:"photo"`
	Summary    bool `json:"summary"`
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
	Languages  bool `json:"languages"`
	Extras     bool `json:"extras"`
}

// DefaultSectionsVisibility shows every section.
func DefaultSectionsVisibility() SectionsVisibility {
	return SectionsVisibility{
		Photo:      true,
		Summary:    true,
		Experience: true,
		Education:  true,
		Skills:     true,
		Languages:  true,
		Extras:     true,
	}
}

// New returns an empty model with all sections visible.
func New() Model {
	return Model{SectionsVisibility: DefaultSectionsVisibility()}
}

// ExtrasGroupFor returns the group with the given category, or nil.
func (m *Model) ExtrasGroupFor(category string) *ExtrasGroup {
	for i := range m.Extras {
		if m.Extras[i].Category == category {
			return &m.Extras[i]
		}
	}
	return nil
}

// AddExtrasItem appends an item under the category, creating the group if
// needed. Group insertion order is preserved.
func (m *Model) AddExtrasItem(category, item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	if category == "" {
		category = ExtrasOther
	}
	if g := m.ExtrasGroupFor(category); g != nil {
		g.Items = append(g.Items, item)
		return
	}
	m.Extras = append(m.Extras, ExtrasGroup{Category: category, Items: []string{item}})
}

// IsEmpty reports whether the model carries no parsed content at all.
func (m Model) IsEmpty() bool {
	return m.Name == "" && m.Headline == "" && m.Email == "" && m.Phone == "" &&
		m.Location == "" && m.LinkedIn == "" && m.Website == "" && m.Summary == "" &&
		len(m.Experience) == 0 && len(m.Education) == 0 && len(m.Skills) == 0 &&
		len(m.Languages) == 0 && len(m.Extras) == 0
}
