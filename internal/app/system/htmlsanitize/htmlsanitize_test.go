package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/htmlsanitize"
)

func TestSanitize_PlainTextUnchanged(t *testing.T) {
	in := "Software Engineer with 5 years of experience."
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestSanitize_StripsScript(t *testing.T) {
	got := htmlsanitize.Sanitize(`Hello <script>alert("x")</script>world`)
	if strings.Contains(got, "<script>") || strings.Contains(got, "alert") {
		t.Errorf("script survived: %q", got)
	}
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Engineer and <strong>mentor</strong></p>")
	if !strings.Contains(got, "<strong>mentor</strong>") {
		t.Errorf("formatting removed: %q", got)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
