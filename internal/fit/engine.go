// Package fit decides, one step at a time, how to shrink a CV until it fits
// its template's page target. Each call to Next returns a single atomic
// reduction or nil when nothing more applies; the caller is responsible for
// applying the result, re-measuring the layout and calling again. Layout
// measurement happens in the browser, so the driver loop lives with the
// caller along with its iteration ceiling.
package fit

import (
	"sort"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/render"
)

// LayoutMetrics is the measurement of a rendered CV, reported by the client.
type LayoutMetrics struct {
	Fits            bool    `json:"fits"`
	ContentHeightPx float64 `json:"contentHeightPx"`
	PageHeightPx    float64 `json:"pageHeightPx"`
	OverflowPx      float64 `json:"overflowPx"`
	EstimatedPages  float64 `json:"estimatedPages"`
}

// Result is one atomic reduction: either adjusted display settings, or a
// single section forced hidden via VisibilityOverrides. Never both.
type Result struct {
	DisplaySettings     cv.DisplaySettings `json:"displaySettings"`
	VisibilityOverrides map[string]bool    `json:"visibilityOverrides,omitempty"`
}

const (
	summaryFloor    = 100
	summaryStep     = 100
	skillsFloor     = 4
	skillsStep      = 3
	educationFloor  = 1
	experienceFloor = 2
)

// Next returns the next reduction to try, or nil when the layout already
// fits or every rule is exhausted. Rules are ordered and at most one fires
// per call, so repeated invocation is bounded regardless of the metrics the
// caller feeds back.
func Next(doc cv.Model, meta render.TemplateMeta, settings cv.DisplaySettings, metrics LayoutMetrics) *Result {
	if metrics.Fits {
		return nil
	}

	vis := effectiveVisibility(doc.SectionsVisibility, meta.Capabilities)

	// Phase 1: trim content within visible sections.
	switch {
	case settings.MaxBulletsPerJob > 1:
		settings.MaxBulletsPerJob--
		return &Result{DisplaySettings: settings}

	case settings.SummaryMaxChars > summaryFloor && vis[render.SectionSummary] && doc.Summary != "":
		settings.SummaryMaxChars -= summaryStep
		if settings.SummaryMaxChars < summaryFloor {
			settings.SummaryMaxChars = summaryFloor
		}
		return &Result{DisplaySettings: settings}

	case settings.MaxSkills > skillsFloor && vis[render.SectionSkills] && len(doc.Skills) > skillsFloor:
		settings.MaxSkills -= skillsStep
		if settings.MaxSkills < skillsFloor {
			settings.MaxSkills = skillsFloor
		}
		return &Result{DisplaySettings: settings}

	case settings.MaxEducation > educationFloor && vis[render.SectionEducation] && visibleEducation(doc) > educationFloor:
		settings.MaxEducation--
		return &Result{DisplaySettings: settings}

	case settings.MaxExperience > experienceFloor && vis[render.SectionExperience] && len(render.GroupExperience(doc.Experience)) > experienceFloor:
		settings.MaxExperience--
		return &Result{DisplaySettings: settings}
	}

	// Phase 2: hide the lowest-priority visible section. Experience is
	// never force-hidden, whatever its priority says.
	if section := lowestPriorityVisible(meta.Policy.Priorities, vis); section != "" {
		return &Result{
			DisplaySettings:     settings,
			VisibilityOverrides: map[string]bool{section: false},
		}
	}

	// Phase 3: last resort.
	if settings.MaxBulletsPerJob > 0 {
		settings.MaxBulletsPerJob = 0
		return &Result{DisplaySettings: settings}
	}
	if settings.MaxExperience > 1 {
		settings.MaxExperience = 1
		return &Result{DisplaySettings: settings}
	}

	return nil
}

func effectiveVisibility(vis cv.SectionsVisibility, caps render.Capabilities) map[string]bool {
	return map[string]bool{
		render.SectionPhoto:      vis.Photo && caps.SupportsPhoto,
		render.SectionSummary:    vis.Summary && caps.SupportsSummary,
		render.SectionExperience: vis.Experience,
		render.SectionEducation:  vis.Education,
		render.SectionSkills:     vis.Skills && caps.SupportsSkills,
		render.SectionLanguages:  vis.Languages && caps.SupportsLanguages,
		render.SectionExtras:     vis.Extras && caps.SupportsExtras,
	}
}

func visibleEducation(doc cv.Model) int {
	var n int
	for _, e := range doc.Education {
		if !e.Hidden {
			n++
		}
	}
	return n
}

// lowestPriorityVisible picks the visible section with the smallest
// priority value, breaking ties by key so the choice is deterministic.
func lowestPriorityVisible(priorities map[string]int, vis map[string]bool) string {
	keys := make([]string, 0, len(priorities))
	for key := range priorities {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if priorities[keys[i]] != priorities[keys[j]] {
			return priorities[keys[i]] < priorities[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if key == render.SectionExperience {
			continue
		}
		if vis[key] {
			return key
		}
	}
	return ""
}
