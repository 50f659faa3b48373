package team

import "testing"

func TestDeriveShortName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code     string
		name     string
		expected string
	}{
		{code: "FUT", name: "FUT Esports", expected: "FUT"},
		{code: "nv", name: "Team Envy", expected: "NV"},
		{code: "", name: "Sentinels", expected: "SEN"},
		{code: "", name: "G2", expected: "G2"},
		{code: "", name: "", expected: ""},
		{code: " ", name: "  Cloud9  ", expected: "CLO"},
	}

	for _, tc := range cases {
		if got := DeriveShortName(tc.code, tc.name); got != tc.expected {
			t.Fatalf("DeriveShortName(%q, %q) = %q, expected %q", tc.code, tc.name, got, tc.expected)
		}
	}
}
