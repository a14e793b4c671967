// internal/app/features/admin/form.go
package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dmfarley/profilemap/internal/app/system/inputval"
	"github.com/dmfarley/profilemap/internal/app/system/interests"
	"github.com/dmfarley/profilemap/internal/domain/models"
)

// profileInput holds the declarative rules for the add/edit form. Lat/Lng
// are checked separately because they need a numeric parse first.
type profileInput struct {
	Name        string `validate:"required,max=200" label:"Name"`
	Photo       string `validate:"required,url" label:"Photo URL"`
	Description string `validate:"required" label:"Description"`
	Street      string `validate:"required" label:"Street"`
	City        string `validate:"required" label:"City"`
	State       string `validate:"required" label:"State"`
	Country     string `validate:"required" label:"Country"`
	Email       string `validate:"omitempty,email" label:"Email"`
}

// parseProfileForm reads the submitted form into an echo view model, a
// validation result, and (when valid) the profile to persist.
//
// Validation never touches the store: the caller only calls Create/Update
// when res.HasErrors() is false, so a rejected submission leaves the data
// exactly as it was.
func parseProfileForm(r *http.Request) (formData, models.Profile, inputval.Result) {
	in := profileInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Photo:       strings.TrimSpace(r.FormValue("photo")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Street:      strings.TrimSpace(r.FormValue("street")),
		City:        strings.TrimSpace(r.FormValue("city")),
		State:       strings.TrimSpace(r.FormValue("state")),
		Country:     strings.TrimSpace(r.FormValue("country")),
		Email:       strings.TrimSpace(r.FormValue("email")),
	}
	phone := strings.TrimSpace(r.FormValue("phone"))
	latRaw := strings.TrimSpace(r.FormValue("lat"))
	lngRaw := strings.TrimSpace(r.FormValue("lng"))
	ints := interests.Normalize(interests.Split(r.FormValue("interests")))

	echo := formData{
		Name:            in.Name,
		Photo:           in.Photo,
		Description:     in.Description,
		Street:          in.Street,
		City:            in.City,
		State:           in.State,
		Country:         in.Country,
		Lat:             latRaw,
		Lng:             lngRaw,
		Email:           in.Email,
		Phone:           phone,
		Interests:       ints,
		InterestsJoined: interests.Join(ints),
	}

	res := inputval.Validate(in)

	lat, err := strconv.ParseFloat(latRaw, 64)
	switch {
	case latRaw == "":
		res.Add("Lat", "Latitude is required.")
	case err != nil:
		res.Add("Lat", "Latitude must be a number.")
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	switch {
	case lngRaw == "":
		res.Add("Lng", "Longitude is required.")
	case err != nil:
		res.Add("Lng", "Longitude must be a number.")
	}

	// Contact info is optional as a unit: leave both blank to omit it, but
	// a phone on its own has no email to pair with.
	if phone != "" && in.Email == "" {
		res.Add("Email", "Email is required when a phone number is given.")
	}
	if in.Email != "" && phone == "" {
		res.Add("Phone", "Phone is required when an email is given.")
	}

	if res.HasErrors() {
		return echo, models.Profile{}, res
	}

	p := models.Profile{
		Name:        in.Name,
		Photo:       in.Photo,
		Description: in.Description,
		Address: models.Address{
			Street:  in.Street,
			City:    in.City,
			State:   in.State,
			Country: in.Country,
			Coordinates: models.Coordinates{
				Lat: lat,
				Lng: lng,
			},
		},
		Interests: ints,
	}
	if in.Email != "" {
		p.ContactInfo = &models.ContactInfo{Email: in.Email, Phone: phone}
	}
	return echo, p, res
}

// fillForm populates the echo fields from a stored profile for the edit page.
func fillForm(p models.Profile) formData {
	f := formData{
		Name:            p.Name,
		Photo:           p.Photo,
		Description:     p.Description,
		Street:          p.Address.Street,
		City:            p.Address.City,
		State:           p.Address.State,
		Country:         p.Address.Country,
		Lat:             strconv.FormatFloat(p.Address.Coordinates.Lat, 'f', -1, 64),
		Lng:             strconv.FormatFloat(p.Address.Coordinates.Lng, 'f', -1, 64),
		Interests:       p.Interests,
		InterestsJoined: interests.Join(p.Interests),
	}
	if p.HasContactInfo() {
		f.Email = p.ContactInfo.Email
		f.Phone = p.ContactInfo.Phone
	}
	return f
}
