package linkedin

import (
	"reflect"
	"testing"

	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

func bodyLine(text string, y float64) layout.Line {
	return layout.Line{Text: text, FontSize: 10, Y: y, Page: 1}
}

func boldLine(text string, y float64) layout.Line {
	return layout.Line{Text: text, Bold: true, FontSize: 10, Y: y, Page: 1}
}

func TestParseExperienceCompanyThenTitle(t *testing.T) {
	lines := []layout.Line{
		boldLine("Acme Corp", 700),
		boldLine("Software Engineer", 685),
		bodyLine("Jan 2020 - Present", 670),
		bodyLine("Stockholm, Sweden", 655),
		bodyLine("Building things.", 640),
	}
	got := parseExperience(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	e := got[0]
	if e.Company != "Acme Corp" || e.Title != "Software Engineer" {
		t.Errorf("company=%q title=%q", e.Company, e.Title)
	}
	if e.StartDate != "Jan 2020" || e.EndDate != "Present" {
		t.Errorf("dates = %q..%q", e.StartDate, e.EndDate)
	}
	if e.Location != "Stockholm, Sweden" {
		t.Errorf("location = %q", e.Location)
	}
	if e.Description != "Building things." {
		t.Errorf("description = %q", e.Description)
	}
}

func TestParseExperienceMultipleRolesSameCompany(t *testing.T) {
	lines := []layout.Line{
		boldLine("Acme Corp", 700),
		boldLine("Junior Engineer", 685),
		bodyLine("2018 - 2020", 670),
		boldLine("Senior Engineer", 655),
		bodyLine("2020 - Present", 640),
	}
	got := parseExperience(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
	}
	if got[0].Company != "Acme Corp" || got[0].Title != "Junior Engineer" {
		t.Errorf("entry 0: company=%q title=%q", got[0].Company, got[0].Title)
	}
	if got[1].Company != "Acme Corp" || got[1].Title != "Senior Engineer" {
		t.Errorf("entry 1: company=%q title=%q", got[1].Company, got[1].Title)
	}
}

func TestParseExperienceBullets(t *testing.T) {
	lines := []layout.Line{
		boldLine("Acme Corp", 700),
		boldLine("Engineer", 685),
		bodyLine("2020 - 2021", 670),
		bodyLine("• Shipped the billing system", 655),
		bodyLine("with zero downtime", 640),
		bodyLine("- Mentored two juniors", 625),
	}
	got := parseExperience(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	want := []string{"Shipped the billing system", "with zero downtime", "Mentored two juniors"}
	if !reflect.DeepEqual(got[0].Bullets, want) {
		t.Errorf("bullets = %v, want %v", got[0].Bullets, want)
	}
}

func TestParseExperienceDurationDropped(t *testing.T) {
	lines := []layout.Line{
		boldLine("Acme Corp", 700),
		boldLine("Engineer", 685),
		bodyLine("2020 - 2021", 670),
		bodyLine("1 year 2 months", 655),
	}
	got := parseExperience(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Description != "" || len(got[0].Bullets) != 0 {
		t.Errorf("duration line leaked into content: %+v", got[0])
	}
}

func TestParseExperienceHeaderByFontSize(t *testing.T) {
	lines := []layout.Line{
		{Text: "Acme Corp", FontSize: 12, Y: 700, Page: 1},
		{Text: "Engineer", FontSize: 12, Y: 685, Page: 1},
		bodyLine("2020 - 2021", 670),
		bodyLine("Did things.", 655),
	}
	got := parseExperience(lines)
	if len(got) != 1 || got[0].Company != "Acme Corp" || got[0].Title != "Engineer" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestParseExperienceEmpty(t *testing.T) {
	if got := parseExperience(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestParseExperienceDehyphenatesDescription(t *testing.T) {
	lines := []layout.Line{
		boldLine("Acme Corp", 700),
		boldLine("Engineer", 685),
		bodyLine("2020 - 2021", 670),
		bodyLine("Responsible for infra-", 655),
		bodyLine("structure work", 640),
	}
	got := parseExperience(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Description != "Responsible for infrastructure work" {
		t.Errorf("description = %q", got[0].Description)
	}
}
