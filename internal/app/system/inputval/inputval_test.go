package inputval_test

import (
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/inputval"
)

type testInput struct {
	Name  string `validate:"required,max=10" label:"Name"`
	Photo string `validate:"required,url" label:"Photo URL"`
	Email string `validate:"omitempty,email" label:"Email"`
}

func TestValidate_Passes(t *testing.T) {
	res := inputval.Validate(testInput{
		Name:  "Ann",
		Photo: "https://example.com/a.jpg",
		Email: "ann@example.com",
	})
	if res.HasErrors() {
		t.Errorf("expected no errors, got %q", res.First())
	}
}

func TestValidate_RequiredAndURL(t *testing.T) {
	res := inputval.Validate(testInput{
		Photo: "not-a-url",
	})
	if !res.HasErrors() {
		t.Fatal("expected errors")
	}

	if msg := res.Field("Name"); msg != "Name is required." {
		t.Errorf("Name message: got %q", msg)
	}
	if msg := res.Field("Photo"); msg != "Photo URL must be a valid URL." {
		t.Errorf("Photo message: got %q", msg)
	}
}

func TestValidate_OptionalEmail(t *testing.T) {
	// Empty email passes, a malformed one fails.
	res := inputval.Validate(testInput{Name: "Ann", Photo: "https://example.com/a.jpg"})
	if res.HasErrors() {
		t.Errorf("empty email should pass, got %q", res.First())
	}

	res = inputval.Validate(testInput{Name: "Ann", Photo: "https://example.com/a.jpg", Email: "nope"})
	if msg := res.Field("Email"); msg != "Email must be a valid email address." {
		t.Errorf("Email message: got %q", msg)
	}
}

func TestValidate_MaxUsesLabel(t *testing.T) {
	res := inputval.Validate(testInput{
		Name:  "a-very-long-name-over-the-limit",
		Photo: "https://example.com/a.jpg",
	})
	if msg := res.Field("Name"); msg != "Name must be at most 10 characters." {
		t.Errorf("max message: got %q", msg)
	}
}

func TestResult_FirstAndAdd(t *testing.T) {
	var res inputval.Result
	if res.HasErrors() || res.First() != "" {
		t.Error("zero Result should report no errors")
	}

	res.Add("Lat", "Latitude must be a number.")
	if !res.HasErrors() {
		t.Fatal("expected errors after Add")
	}
	if res.First() != "Latitude must be a number." {
		t.Errorf("First: got %q", res.First())
	}
	if res.Fields()["Lat"] != "Latitude must be a number." {
		t.Errorf("Fields: got %v", res.Fields())
	}
}
