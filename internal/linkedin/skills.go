package linkedin

import (
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/layout"
)

// parseSkillLines splits skill lines into individual skills. Comma lists
// first, then interpunct/bullet separators, otherwise the whole line is one
// skill.
func parseSkillLines(lines []layout.Line) []string {
	var skills []string
	for _, line := range lines {
		skills = append(skills, splitSkillLine(line.Text)...)
	}
	return skills
}

func splitSkillLine(text string) []string {
	text = stripBullet(text)
	if text == "" {
		return nil
	}

	var parts []string
	switch {
	case strings.Contains(text, ","):
		parts = strings.Split(text, ",")
	case strings.ContainsAny(text, "·•"):
		parts = strings.FieldsFunc(text, func(r rune) bool {
			return r == '·' || r == '•'
		})
	default:
		parts = []string{text}
	}

	var out []string
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
