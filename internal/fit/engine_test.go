package fit

import (
	"testing"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/render"
)

func overflowing() LayoutMetrics {
	return LayoutMetrics{
		Fits:            false,
		ContentHeightPx: 1400,
		PageHeightPx:    1122,
		OverflowPx:      278,
		EstimatedPages:  1.25,
	}
}

func crowdedModel() cv.Model {
	m := cv.New()
	m.Summary = "A long professional summary that keeps going."
	m.Skills = []string{"Go", "Rust", "Python", "SQL", "Bash", "Terraform"}
	for i := 0; i < 5; i++ {
		m.Experience = append(m.Experience, cv.Experience{
			Title:   "Engineer",
			Company: string(rune('A' + i)),
			Bullets: []string{"did a thing", "did another"},
		})
	}
	m.Education = []cv.Education{
		{Institution: "KTH"},
		{Institution: "Uppsala"},
		{Institution: "Lund"},
	}
	m.Languages = []cv.Language{{Name: "Swedish", Level: cv.LevelNative}}
	m.Extras = []cv.ExtrasGroup{{Category: cv.ExtrasCourses, Items: []string{"x"}}}
	return m
}

func TestNextReturnsNilWhenFits(t *testing.T) {
	metrics := overflowing()
	metrics.Fits = true

	if r := Next(crowdedModel(), render.TemplateOrDefault("classic"), cv.DefaultDisplaySettings(), metrics); r != nil {
		t.Fatalf("Next = %+v, want nil for fitting layout", r)
	}
}

func TestNextTrimsBulletsFirst(t *testing.T) {
	settings := cv.DefaultDisplaySettings()

	r := Next(crowdedModel(), render.TemplateOrDefault("classic"), settings, overflowing())
	if r == nil {
		t.Fatal("Next = nil, want a reduction")
	}
	if r.VisibilityOverrides != nil {
		t.Fatalf("overrides = %v, want a settings-only step", r.VisibilityOverrides)
	}
	if r.DisplaySettings.MaxBulletsPerJob != settings.MaxBulletsPerJob-1 {
		t.Errorf("maxBulletsPerJob = %d, want %d", r.DisplaySettings.MaxBulletsPerJob, settings.MaxBulletsPerJob-1)
	}
}

func TestNextSummaryFlooredAtHundred(t *testing.T) {
	settings := cv.DefaultDisplaySettings()
	settings.MaxBulletsPerJob = 1
	settings.SummaryMaxChars = 150

	r := Next(crowdedModel(), render.TemplateOrDefault("classic"), settings, overflowing())
	if r == nil {
		t.Fatal("Next = nil, want a reduction")
	}
	if r.DisplaySettings.SummaryMaxChars != 100 {
		t.Errorf("summaryMaxChars = %d, want floor 100", r.DisplaySettings.SummaryMaxChars)
	}
}

func TestNextSkipsTrimRulesWithoutContent(t *testing.T) {
	m := cv.New()
	m.Experience = []cv.Experience{
		{Title: "Engineer", Company: "Acme"},
		{Title: "Engineer", Company: "Globex"},
	}

	settings := cv.DefaultDisplaySettings()
	settings.MaxBulletsPerJob = 1
	settings.SummaryMaxChars = 100

	// No summary, few skills, one education entry, two experience groups:
	// phase 1 has nothing left, so the lowest-priority section is hidden.
	r := Next(m, render.TemplateOrDefault("classic"), settings, overflowing())
	if r == nil {
		t.Fatal("Next = nil, want a hide step")
	}
	if hidden, ok := r.VisibilityOverrides[render.SectionExtras]; !ok || hidden {
		t.Fatalf("overrides = %v, want extras forced hidden", r.VisibilityOverrides)
	}
}

func TestNextNeverHidesExperience(t *testing.T) {
	m := cv.New()
	m.SectionsVisibility = cv.SectionsVisibility{Experience: true}

	settings := cv.DefaultDisplaySettings()
	settings.MaxBulletsPerJob = 0
	settings.MaxExperience = 1

	// Everything else is hidden and every trim rule is exhausted; the only
	// remaining section must not be offered as a hide step.
	r := Next(m, render.TemplateOrDefault("classic"), settings, overflowing())
	if r != nil {
		t.Fatalf("Next = %+v, want nil when only experience remains", r)
	}
}

// drive applies each reduction the way the browser-side loop would and
// counts the steps until the engine gives up.
func drive(t *testing.T, m cv.Model, meta render.TemplateMeta, settings cv.DisplaySettings) (cv.DisplaySettings, int) {
	t.Helper()
	const ceiling = 64
	steps := 0
	for ; steps < ceiling; steps++ {
		r := Next(m, meta, settings, overflowing())
		if r == nil {
			return settings, steps
		}
		prev := settings
		settings = r.DisplaySettings
		if settings.MaxBulletsPerJob > prev.MaxBulletsPerJob ||
			settings.SummaryMaxChars > prev.SummaryMaxChars ||
			settings.MaxSkills > prev.MaxSkills ||
			settings.MaxEducation > prev.MaxEducation ||
			settings.MaxExperience > prev.MaxExperience {
			t.Fatalf("step %d increased a cap: %+v -> %+v", steps, prev, settings)
		}
		for section, visible := range r.VisibilityOverrides {
			if visible {
				t.Fatalf("step %d turned a section on: %s", steps, section)
			}
			switch section {
			case render.SectionPhoto:
				m.SectionsVisibility.Photo = false
			case render.SectionSummary:
				m.SectionsVisibility.Summary = false
			case render.SectionEducation:
				m.SectionsVisibility.Education = false
			case render.SectionSkills:
				m.SectionsVisibility.Skills = false
			case render.SectionLanguages:
				m.SectionsVisibility.Languages = false
			case render.SectionExtras:
				m.SectionsVisibility.Extras = false
			}
		}
	}
	t.Fatalf("engine still reducing after %d steps", ceiling)
	return settings, steps
}

func TestNextTerminatesWhenNothingEverFits(t *testing.T) {
	final, steps := drive(t, crowdedModel(), render.TemplateOrDefault("classic"), cv.DefaultDisplaySettings())

	if steps == 0 {
		t.Fatal("expected at least one reduction")
	}
	if final.MaxBulletsPerJob != 0 {
		t.Errorf("final maxBulletsPerJob = %d, want 0", final.MaxBulletsPerJob)
	}
	if final.MaxExperience != 1 {
		t.Errorf("final maxExperience = %d, want 1", final.MaxExperience)
	}
	if final.SummaryMaxChars < 100 {
		t.Errorf("final summaryMaxChars = %d, below floor", final.SummaryMaxChars)
	}
}
