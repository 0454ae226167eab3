package info

import "testing"

func TestMask(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"abc":           "***",
		"AIzaSyExample": "*********mple",
	}
	for in, want := range cases {
		if got := Mask(in); got != want {
			t.Fatalf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}
