package spark

import (
	"regexp"
	"testing"
)

func TestVersionFormat(t *testing.T) {
	v := Version()
	matched, err := regexp.MatchString(`^\d+\.\d+\.\d+$`, v)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("Version() = %q, want major.minor.patch", v)
	}
}

func TestVersionComponents(t *testing.T) {
	want := "1.0.0"
	if v := Version(); v != want {
		t.Errorf("Version() = %q, want %q", v, want)
	}
}
