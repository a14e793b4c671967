// internal/app/features/profiles/templates.go
package profiles

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "profiles",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
