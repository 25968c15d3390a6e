package cv

// DisplaySettings caps how much of each section the render model includes.
// Mutated only by the settings UI and the auto-fit engine, never by the
// parser.
type DisplaySettings struct {
	MaxExperience     int    `json:"maxExperience"`
	MaxEducation      int    `json:"maxEducation"`
	MaxSkills         int    `json:"maxSkills"`
	MaxBulletsPerJob  int    `json:"maxBulletsPerJob"`
	MaxExtras         int    `json:"maxExtras"`
	SummaryMaxChars   int    `json:"summaryMaxChars"`
	SimplifyLocations bool   `json:"simplifyLocations"`
	CvLanguage        string `json:"cvLanguage"`
}

// DefaultDisplaySettings returns the caps applied to a freshly imported CV.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		MaxExperience:    10,
		MaxEducation:     10,
		MaxSkills:        30,
		MaxBulletsPerJob: 6,
		MaxExtras:        12,
		SummaryMaxChars:  600,
		CvLanguage:       "en",
	}
}
