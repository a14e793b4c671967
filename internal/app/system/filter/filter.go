// Package filter implements the client-style text filter applied to profile
// lists by the directory and admin views. Filtering never touches the store;
// it narrows a list that has already been fetched.
package filter

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dmfarley/profilemap/internal/domain/models"
)

// Fields selects which profile fields participate in the match. Name, City,
// and Description are always searched; the admin list also matches Country.
type Fields struct {
	Country bool
}

// Matches reports whether p matches the case-insensitive substring query q.
// An empty (or all-whitespace) query matches everything.
func Matches(p models.Profile, q string, f Fields) bool {
	fq := text.Fold(strings.TrimSpace(q))
	if fq == "" {
		return true
	}
	if strings.Contains(text.Fold(p.Name), fq) ||
		strings.Contains(text.Fold(p.Description), fq) ||
		strings.Contains(text.Fold(p.Address.City), fq) {
		return true
	}
	return f.Country && strings.Contains(text.Fold(p.Address.Country), fq)
}

// Apply returns the profiles matching q, preserving input order. An empty
// query returns the input slice unchanged.
func Apply(in []models.Profile, q string, f Fields) []models.Profile {
	if strings.TrimSpace(q) == "" {
		return in
	}
	out := make([]models.Profile, 0, len(in))
	for _, p := range in {
		if Matches(p, q, f) {
			out = append(out, p)
		}
	}
	return out
}
