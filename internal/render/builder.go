package render

import (
	"fmt"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// ellipsis appended when text is hard-truncated.
const ellipsis = "…"

// Model is the fully resolved view handed to templates. Derived on every
// change of its inputs, never persisted.
type Model struct {
	Name               string                `json:"name"`
	Headline           string                `json:"headline"`
	Email              string                `json:"email"`
	Phone              string                `json:"phone"`
	Location           string                `json:"location"`
	LinkedIn           string                `json:"linkedIn"`
	Website            string                `json:"website"`
	Photo              string                `json:"photo"`
	Summary            string                `json:"summary"`
	Experience         []ExperienceGroup     `json:"experience"`
	Education          []cv.Education        `json:"education"`
	Skills             []string              `json:"skills"`
	Languages          []cv.Language         `json:"languages"`
	Extras             []cv.ExtrasGroup      `json:"extras"`
	SectionsVisibility cv.SectionsVisibility `json:"sectionsVisibility"`
}

// ExperienceGroup is one employer block; grouped entries render as roles
// under a shared company header.
type ExperienceGroup struct {
	Company      string           `json:"company"`
	Location     string           `json:"location"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Roles        []ExperienceRole `json:"roles"`
	IsSingleRole bool             `json:"isSingleRole"`
}

// ExperienceRole is a single role within a group.
type ExperienceRole struct {
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// Build derives the render model. Pure: identical inputs produce
// structurally identical output, and the input model is never mutated.
func Build(m cv.Model, meta TemplateMeta, settings cv.DisplaySettings) Model {
	caps := meta.Capabilities
	vis := m.SectionsVisibility

	out := Model{
		Name:     m.Name,
		Headline: m.Headline,
		Email:    m.Email,
		Phone:    m.Phone,
		Location: m.Location,
		LinkedIn: m.LinkedIn,
		Website:  m.Website,
	}

	if caps.SupportsPhoto && vis.Photo {
		out.Photo = m.Photo
	}

	if caps.SupportsSummary && vis.Summary && m.Summary != "" {
		out.Summary = truncate(m.Summary, settings.SummaryMaxChars)
	}

	if vis.Experience {
		out.Experience = buildExperience(m.Experience, meta.Policy, settings)
	}

	if vis.Education {
		out.Education = capEducation(m.Education, settings.MaxEducation)
	}

	if caps.SupportsSkills && vis.Skills {
		out.Skills = capStrings(m.Skills, settings.MaxSkills)
	}

	if caps.SupportsLanguages && vis.Languages {
		out.Languages = append([]cv.Language(nil), m.Languages...)
	}

	if caps.SupportsExtras && vis.Extras {
		out.Extras = capExtras(m.Extras, settings.MaxExtras)
	}

	if settings.SimplifyLocations {
		out.Location = SimplifyLocation(out.Location)
		for i := range out.Experience {
			out.Experience[i].Location = SimplifyLocation(out.Experience[i].Location)
		}
	}

	out.SectionsVisibility = cv.SectionsVisibility{
		Photo:      vis.Photo && caps.SupportsPhoto,
		Summary:    vis.Summary && caps.SupportsSummary,
		Experience: vis.Experience,
		Education:  vis.Education,
		Skills:     vis.Skills && caps.SupportsSkills,
		Languages:  vis.Languages && caps.SupportsLanguages,
		Extras:     vis.Extras && caps.SupportsExtras,
	}

	return out
}

// buildExperience filters hidden entries, groups them by employer, expands
// group dates and applies the bullet and group caps.
func buildExperience(entries []cv.Experience, policy ContentPolicy, settings cv.DisplaySettings) []ExperienceGroup {
	groups := GroupExperience(entries)

	for gi := range groups {
		group := &groups[gi]
		for ri := range group.Roles {
			role := &group.Roles[ri]
			role.Bullets = capStrings(role.Bullets, settings.MaxBulletsPerJob)
			if policy.MaxBulletChars > 0 {
				for bi, bullet := range role.Bullets {
					role.Bullets[bi] = truncate(bullet, policy.MaxBulletChars)
				}
			}
		}
	}

	maxGroups := settings.MaxExperience
	if policy.MaxExperienceItems > 0 && policy.MaxExperienceItems < maxGroups {
		maxGroups = policy.MaxExperienceItems
	}
	if maxGroups >= 0 && len(groups) > maxGroups {
		groups = groups[:maxGroups]
	}
	return groups
}

// GroupExperience folds visible entries into employer groups. The effective
// group key is the explicit companyGroupId when present; otherwise a fresh
// synthetic key is minted whenever the company name changes or is empty, so
// consecutive roles at the same employer share a block. Synthetic keys are
// deterministic, which keeps render output comparable.
func GroupExperience(entries []cv.Experience) []ExperienceGroup {
	type slot struct {
		group   *ExperienceGroup
		ongoing bool
	}
	var (
		order    []string
		byKey    = map[string]*slot{}
		autoSeq  int
		prevKey  string
		prevAuto bool
	)

	for _, entry := range entries {
		if entry.Hidden {
			continue
		}

		key := entry.CompanyGroupID
		auto := key == ""
		if auto {
			if prevAuto && prevKey != "" && entry.Company != "" && byKey[prevKey].group.Company == entry.Company {
				key = prevKey
			} else {
				autoSeq++
				key = fmt.Sprintf("auto-%d", autoSeq)
			}
		}
		prevKey, prevAuto = key, auto

		s, ok := byKey[key]
		if !ok {
			s = &slot{group: &ExperienceGroup{
				Company:   entry.Company,
				Location:  entry.Location,
				StartDate: entry.StartDate,
				EndDate:   entry.EndDate,
			}}
			byKey[key] = s
			order = append(order, key)
		}

		s.group.Roles = append(s.group.Roles, ExperienceRole{
			Title:       entry.Title,
			StartDate:   entry.StartDate,
			EndDate:     entry.EndDate,
			Description: entry.Description,
			Bullets:     append([]string(nil), entry.Bullets...),
		})

		if s.group.StartDate == "" || dateBefore(entry.StartDate, s.group.StartDate) {
			s.group.StartDate = entry.StartDate
		}
		if entry.EndDate == "" {
			s.ongoing = true
		} else if dateBefore(s.group.EndDate, entry.EndDate) {
			s.group.EndDate = entry.EndDate
		}
		if s.group.Location == "" {
			s.group.Location = entry.Location
		}
	}

	out := make([]ExperienceGroup, 0, len(order))
	for _, key := range order {
		s := byKey[key]
		if s.ongoing {
			// An open-ended role keeps the whole block ongoing.
			s.group.EndDate = ""
		}
		s.group.IsSingleRole = len(s.group.Roles) == 1
		out = append(out, *s.group)
	}
	return out
}

func capEducation(entries []cv.Education, max int) []cv.Education {
	out := make([]cv.Education, 0, len(entries))
	for _, e := range entries {
		if e.Hidden {
			continue
		}
		out = append(out, e)
	}
	if max >= 0 && len(out) > max {
		out = out[:max]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func capStrings(items []string, max int) []string {
	if len(items) == 0 {
		return nil
	}
	out := append([]string(nil), items...)
	if max >= 0 && len(out) > max {
		out = out[:max]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// capExtras consumes a shared item budget across all groups in order.
// Groups left with no items are dropped.
func capExtras(groups []cv.ExtrasGroup, budget int) []cv.ExtrasGroup {
	var out []cv.ExtrasGroup
	remaining := budget
	for _, group := range groups {
		if remaining <= 0 {
			break
		}
		take := len(group.Items)
		if take > remaining {
			take = remaining
		}
		if take == 0 {
			continue
		}
		out = append(out, cv.ExtrasGroup{
			Category: group.Category,
			Items:    append([]string(nil), group.Items[:take]...),
		})
		remaining -= take
	}
	return out
}

// truncate hard-cuts text at max characters, appending an ellipsis. No word
// boundary awareness; the cut is exact.
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + ellipsis
}

// SimplifyLocation drops the middle parts of "city, region, country" style
// locations, keeping the first and last.
func SimplifyLocation(location string) string {
	parts := strings.Split(location, ", ")
	if len(parts) < 3 {
		return location
	}
	return parts[0] + ", " + parts[len(parts)-1]
}
