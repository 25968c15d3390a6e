package linkedin

import (
	"strings"
	"testing"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

func TestClassifySectionExact(t *testing.T) {
	cases := []struct {
		in   string
		want Section
	}{
		{"Summary", SectionSummary},
		{"Sammanfattning", SectionSummary},
		{"Experience", SectionExperience},
		{"Erfarenhet", SectionExperience},
		{"Education", SectionEducation},
		{"Utbildning", SectionEducation},
		{"Top Skills", SectionSkills},
		{"Främsta kompetenser", SectionSkills},
		{"Languages", SectionLanguages},
		{"Språk", SectionLanguages},
		{"Contact", SectionContact},
		{"Kontakt", SectionContact},
		{"Certifications", SectionExtras},
		{"Honors-Awards", SectionExtras},
		{"Publications", SectionExtras},
		{"Patents", SectionExtras},
		{"", SectionUnknown},
		{"Built the payments platform from scratch", SectionUnknown},
	}
	for _, tc := range cases {
		if got := ClassifySection(tc.in); got != tc.want {
			t.Errorf("ClassifySection(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassifySectionFallback(t *testing.T) {
	if got := ClassifySection("My Certificates"); got != SectionExtras {
		t.Errorf("substring fallback: got %q", got)
	}
	// Fallback only applies to short lines.
	long := "certifiably the longest line of body text mentioning skills here"
	if len(long) < maxHeaderLen {
		t.Fatal("test line too short")
	}
	if got := ClassifySection(long); got != SectionUnknown {
		t.Errorf("long line classified as %q", got)
	}
}

func TestClassifyExtrasCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Certifications", cv.ExtrasCertifications},
		{"Licenses & Certifications", cv.ExtrasCertifications},
		{"Honors-Awards", cv.ExtrasHonors},
		{"Utmärkelser", cv.ExtrasHonors},
		{"Publications", cv.ExtrasPublications},
		{"Volunteer Experience", cv.ExtrasVolunteering},
		{"Volontärarbete", cv.ExtrasVolunteering},
		{"Kurser", cv.ExtrasCourses},
		{"Projekt", cv.ExtrasProjects},
		{"Patents", cv.ExtrasPatents},
		{"Something Else Entirely", cv.ExtrasOther},
	}
	for _, tc := range cases {
		if got := ClassifyExtrasCategory(tc.in); got != tc.want {
			t.Errorf("ClassifyExtrasCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassifySectionNormalizes(t *testing.T) {
	for _, in := range []string{"  experience  ", "EXPERIENCE", "Experience"} {
		if got := ClassifySection(in); got != SectionExperience {
			t.Errorf("ClassifySection(%q) = %q", strings.TrimSpace(in), got)
		}
	}
}
