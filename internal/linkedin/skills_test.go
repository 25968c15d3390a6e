package linkedin

import (
	"reflect"
	"testing"
)

func TestSplitSkillLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Python, Go, Rust", []string{"Python", "Go", "Rust"}},
		{"Python · Go · Rust", []string{"Python", "Go", "Rust"}},
		{"Python • Go", []string{"Python", "Go"}},
		{"• Kubernetes", []string{"Kubernetes"}},
		{"Distributed Systems", []string{"Distributed Systems"}},
		{" , , ", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if got := splitSkillLine(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitSkillLine(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
