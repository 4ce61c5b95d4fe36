package lifetimed_test

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// The lifetime gate is a type-checker property, so it is verified the way the
// compiler sees it: by building small programs under testdata/ and asserting
// the outcome.

func buildTestdata(t *testing.T, dir string) (string, error) {
	t.Helper()

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	out := filepath.Join(t.TempDir(), "prog")
	cmd := exec.Command("go", "build", "-o", out, "./"+filepath.Join("testdata", dir))
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestBorrowedTagCannotEscape(t *testing.T) {
	t.Parallel()

	output, err := buildTestdata(t, "escapecheck")
	if err == nil {
		t.Fatal("program retaining a borrowed-tag handle must not compile")
	}
	if !strings.Contains(output, "cannot use") {
		t.Errorf("expected a type mismatch rejection, got:\n%s", output)
	}
	// Both escape attempts are tag mismatches, not unrelated build noise.
	if !strings.Contains(output, "localScope") {
		t.Errorf("rejection should involve the local tag, got:\n%s", output)
	}
}

func TestStaticConversionCompiles(t *testing.T) {
	t.Parallel()

	output, err := buildTestdata(t, "staticok")
	if err != nil {
		t.Fatalf("static conversion must compile, got error:\n%s", output)
	}
}
