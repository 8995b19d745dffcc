package request

import "testing"

func TestCEPLookupRequest_NormalizedCEP(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"02515-030", "02515030"},
		{" 02515 030 ", "02515030"},
		{"02515030", "02515030"},
		{"abc", ""},
	}
	for _, tc := range cases {
		r := CEPLookupRequest{CEP: tc.in}
		if got := r.NormalizedCEP(); got != tc.want {
			t.Fatalf("NormalizedCEP(%q) expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
