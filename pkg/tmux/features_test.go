package tmux

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		output    string
		major     int
		minor     int
		hasTitles bool
	}{
		{"tmux 3.3a\n", 3, 3, true},
		{"tmux 3.0", 3, 0, true},
		{"tmux 2.9a", 2, 9, false},
		{"tmux next-3.6", 3, 6, true},
		{"tmux master", 3, 0, true},
		{"something unexpected", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.output, func(t *testing.T) {
			v := parseVersion(tc.output)
			if v.Major != tc.major || v.Minor != tc.minor {
				t.Errorf("parseVersion(%q) = %d.%d, want %d.%d", tc.output, v.Major, v.Minor, tc.major, tc.minor)
			}
			caps := capabilitiesFor(v)
			if caps.PaneTitles != tc.hasTitles {
				t.Errorf("PaneTitles for %q = %v, want %v", tc.output, caps.PaneTitles, tc.hasTitles)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	v := parseVersion("tmux 3.3a\n")
	if v.String() != "tmux 3.3a" {
		t.Errorf("String() = %q, want %q", v.String(), "tmux 3.3a")
	}
}
