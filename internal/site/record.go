// Package site holds the editable site content record and the client-side
// cache that bridges the durable settings store and the rendering layer.
package site

// Setting keys. The key set is fixed and known in advance; writes targeting
// any other key are ignored by the store.
const (
	KeySiteName         = "site_name"
	KeyLogoText         = "logo_text"
	KeyLogoURL          = "logo_url"
	KeyHeroTitle        = "hero_title"
	KeyHeroSubtitle     = "hero_subtitle"
	KeyHeroImage        = "hero_image"
	KeyAboutTitle       = "about_title"
	KeyAboutDescription = "about_description"
	KeyAboutImage       = "about_image"
	KeyCEOName          = "ceo_name"
	KeyCEORole          = "ceo_role"
	KeyCEOImage         = "ceo_image"
	KeyContactPhone     = "contact_phone"
	KeyContactEmail     = "contact_email"
	KeyContactAddress   = "contact_address"
	KeyTeamMembers      = "team_members"
)

// Record is the complete flat key-to-text mapping representing all editable
// site content. The team roster is carried as serialized text under
// KeyTeamMembers and is meaningful only to the roster codec.
type Record map[string]string

// Keys returns the fixed set of known setting keys.
func Keys() []string {
	return []string{
		KeySiteName,
		KeyLogoText,
		KeyLogoURL,
		KeyHeroTitle,
		KeyHeroSubtitle,
		KeyHeroImage,
		KeyAboutTitle,
		KeyAboutDescription,
		KeyAboutImage,
		KeyCEOName,
		KeyCEORole,
		KeyCEOImage,
		KeyContactPhone,
		KeyContactEmail,
		KeyContactAddress,
		KeyTeamMembers,
	}
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Merge returns a copy of the record with the partial values laid over it.
// Keys absent from partial keep their current value.
func (r Record) Merge(partial Record) Record {
	out := r.Clone()
	for k, v := range partial {
		out[k] = v
	}

	return out
}
