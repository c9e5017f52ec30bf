package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI fails the test if s contains ANSI escape sequences.
func AssertNoANSI(t testing.TB, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// TestdataDir returns the repository's testdata directory, searching upward
// from the package under test.
func TestdataDir(t testing.TB) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	dir := wd
	for range 4 {
		candidate := filepath.Join(dir, "testdata")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("testdata directory not found above %s", wd)
	return ""
}
