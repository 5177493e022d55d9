package matching

import "testing"

func TestSkillsMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"React", "react", true},
		{"  React ", "react", true},
		{"JavaScript", "js", true},
		{"nodejs", "ecmascript", true},
		{"TypeScript", "TS", true},
		{"css3", "CSS", true},
		{"html5", "HTML", true},
		{"python", "Py", true},
		// substring rule, known loose behavior
		{"Java", "JavaScript", true},
		{"Go", "Django", true},
		{"React", "Angular", false},
		{"js", "ts", false},
		{"", "react", false},
		{"react", "", false},
	}
	for _, tc := range cases {
		if got := SkillsMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("SkillsMatch(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSkillsMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"JavaScript", "js"},
		{"Java", "JavaScript"},
		{"react", "angular"},
	}
	for _, p := range pairs {
		if SkillsMatch(p[0], p[1]) != SkillsMatch(p[1], p[0]) {
			t.Errorf("SkillsMatch not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestLocationsMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Bangalore", "Bangalore, India", true},
		{"bangalore, india", "Bangalore, India", true},
		{"Jakarta", "Bandung", false},
		{"", "Bangalore", false},
		{"Remote", "", false},
	}
	for _, tc := range cases {
		if got := LocationsMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("LocationsMatch(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestExperienceScore_Symmetric(t *testing.T) {
	levels := []string{"entry", "junior", "mid", "senior", "lead", "executive", "director", "unknown"}
	for _, a := range levels {
		for _, b := range levels {
			if experienceScore(a, b) != experienceScore(b, a) {
				t.Errorf("experienceScore(%q, %q) not symmetric", a, b)
			}
		}
	}
}

func TestExperienceScore_Distances(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"mid", "Mid", 1.0},
		{"entry", "junior", 1.0},
		{"executive", "director", 1.0},
		{"mid", "senior", 0.7},
		{"entry", "senior", 0.4},
		{"entry", "lead", 0.1},
		{"entry", "director", 0.1},
		// unrecognized defaults to entry
		{"wizard", "junior", 1.0},
		{"wizard", "mid", 0.7},
	}
	for _, tc := range cases {
		if got := experienceScore(tc.a, tc.b); got != tc.want {
			t.Errorf("experienceScore(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
