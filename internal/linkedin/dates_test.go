package linkedin

import "testing"

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		in         string
		start, end string
	}{
		{"Jan 2020 - Present", "Jan 2020", "Present"},
		{"2019 – 2021", "2019", "2021"},
		{"january 2018 — december 2019", "January 2018", "December 2019"},
		{"mars 2015 - nu", "Mars 2015", "Present"},
		{"aug 2021-pågående", "Aug 2021", "Present"},
		{"  2020 - current ", "2020", "Present"},
	}
	for _, tc := range cases {
		got := ParseDateRange(tc.in)
		if got == nil {
			t.Errorf("ParseDateRange(%q) = nil", tc.in)
			continue
		}
		if got.Start != tc.start || got.End != tc.end {
			t.Errorf("ParseDateRange(%q) = {%q, %q}, want {%q, %q}",
				tc.in, got.Start, got.End, tc.start, tc.end)
		}
	}
}

func TestParseDateRangeRejects(t *testing.T) {
	for _, in := range []string{
		"några ord",
		"Stockholm, Sweden",
		"Managed a team of 5",
		"2 år 3 månader",
		"",
	} {
		if got := ParseDateRange(in); got != nil {
			t.Errorf("ParseDateRange(%q) = %+v, want nil", in, got)
		}
	}
}

func TestIsDurationLine(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2 år 3 månader", true},
		{"1 year 4 months", true},
		{"10 months", true},
		{"Software Engineer", false},
		{"2020 - 2021", false},
	}
	for _, tc := range cases {
		if got := isDurationLine(tc.in); got != tc.want {
			t.Errorf("isDurationLine(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
