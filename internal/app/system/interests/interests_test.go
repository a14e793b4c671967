package interests_test

import (
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/interests"
)

func TestAdd(t *testing.T) {
	list, added := interests.Add(nil, "Design")
	if !added || len(list) != 1 || list[0] != "Design" {
		t.Fatalf("Add: got %v, added=%v", list, added)
	}

	// Exact duplicate is rejected
	list, added = interests.Add(list, "Design")
	if added || len(list) != 1 {
		t.Errorf("duplicate: got %v, added=%v", list, added)
	}

	// Different case is a different entry (matching is exact)
	list, added = interests.Add(list, "design")
	if !added || len(list) != 2 {
		t.Errorf("case variant: got %v, added=%v", list, added)
	}
}

func TestAdd_TrimsAndRejectsBlank(t *testing.T) {
	list, added := interests.Add(nil, "  Hiking  ")
	if !added || list[0] != "Hiking" {
		t.Errorf("expected trimmed entry, got %v", list)
	}

	list, added = interests.Add(list, "   ")
	if added || len(list) != 1 {
		t.Errorf("blank entry should be rejected, got %v", list)
	}
}

func TestNormalize(t *testing.T) {
	out := interests.Normalize([]string{" Design", "Design", "Art", "", "Art "})
	if len(out) != 2 || out[0] != "Design" || out[1] != "Art" {
		t.Errorf("Normalize: got %v, want [Design Art]", out)
	}
}

func TestNormalize_AlwaysNonNil(t *testing.T) {
	if out := interests.Normalize(nil); out == nil {
		t.Error("expected non-nil slice for nil input")
	}
}

func TestSplitJoin(t *testing.T) {
	if got := interests.Split(""); got != nil {
		t.Errorf("Split(\"\"): got %v, want nil", got)
	}

	got := interests.Split("Go,Rowing")
	if len(got) != 2 || got[0] != "Go" || got[1] != "Rowing" {
		t.Errorf("Split: got %v", got)
	}

	if joined := interests.Join([]string{"Go", "Rowing"}); joined != "Go,Rowing" {
		t.Errorf("Join: got %q", joined)
	}
}
