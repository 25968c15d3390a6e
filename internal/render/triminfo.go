package render

import (
	"unicode/utf8"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// TrimInfo tells the caller what the render model left out relative to the
// full document, so the UI can surface "N more items hidden" hints.
type TrimInfo struct {
	HiddenExperience int  `json:"hiddenExperience"`
	HiddenEducation  int  `json:"hiddenEducation"`
	HiddenSkills     int  `json:"hiddenSkills"`
	HiddenExtras     int  `json:"hiddenExtras"`
	SummaryTruncated bool `json:"summaryTruncated"`
	AnyTrimmed       bool `json:"anyTrimmed"`
}

// ComputeTrimInfo compares a render model against the document it was built
// from. Entries the user hid themselves do not count as trimmed.
func ComputeTrimInfo(doc cv.Model, rm Model) TrimInfo {
	var info TrimInfo

	var wantExp int
	for _, e := range doc.Experience {
		if !e.Hidden {
			wantExp++
		}
	}
	var gotExp int
	for _, g := range rm.Experience {
		gotExp += len(g.Roles)
	}
	info.HiddenExperience = nonNegative(wantExp - gotExp)

	var wantEdu int
	for _, e := range doc.Education {
		if !e.Hidden {
			wantEdu++
		}
	}
	info.HiddenEducation = nonNegative(wantEdu - len(rm.Education))

	info.HiddenSkills = nonNegative(len(doc.Skills) - len(rm.Skills))

	var wantExtras, gotExtras int
	for _, g := range doc.Extras {
		wantExtras += len(g.Items)
	}
	for _, g := range rm.Extras {
		gotExtras += len(g.Items)
	}
	info.HiddenExtras = nonNegative(wantExtras - gotExtras)

	info.SummaryTruncated = doc.Summary != "" &&
		utf8.RuneCountInString(rm.Summary) < utf8.RuneCountInString(doc.Summary)

	info.AnyTrimmed = info.HiddenExperience > 0 ||
		info.HiddenEducation > 0 ||
		info.HiddenSkills > 0 ||
		info.HiddenExtras > 0 ||
		info.SummaryTruncated

	return info
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
