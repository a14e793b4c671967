// internal/domain/models/profile.go
package models

import "time"

// DefaultSiteName is used for page titles and the header brand.
const DefaultSiteName = "ProfileMap"

// Coordinates is a latitude/longitude pair. Presence is validated at form
// time; no range checks are applied on read.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Address is the full postal location for a profile. Every sub-field is
// required by form validation; the store does not re-validate on read.
type Address struct {
	Street      string      `bson:"street" json:"street"`
	City        string      `bson:"city" json:"city"`
	State       string      `bson:"state" json:"state"`
	Country     string      `bson:"country" json:"country"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// ContactInfo holds the optional contact block. When a profile has no
// contact info the Profile field is nil; the pair is all-or-nothing.
type ContactInfo struct {
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Profile is one directory entry.
//
// ID is an opaque UUID string assigned by the store at create time and
// immutable thereafter. The *CI fields are case-folded copies maintained by
// the store for case-insensitive search and sorting; they never appear in
// rendered output.
type Profile struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	NameCI      string `bson:"name_ci" json:"-"`
	Photo       string `bson:"photo" json:"photo"`
	Description string `bson:"description" json:"description"`
	DescCI      string `bson:"description_ci" json:"-"`
	CityCI      string `bson:"city_ci" json:"-"`
	CountryCI   string `bson:"country_ci" json:"-"`

	Address     Address      `bson:"address" json:"address"`
	ContactInfo *ContactInfo `bson:"contact_info,omitempty" json:"contactInfo,omitempty"`

	// Interests is an ordered display list; duplicates are suppressed at
	// entry time only. nil is treated as empty by all consumers.
	Interests []string `bson:"interests,omitempty" json:"interests,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// HasContactInfo reports whether the optional contact block is present.
func (p Profile) HasContactInfo() bool {
	return p.ContactInfo != nil
}
