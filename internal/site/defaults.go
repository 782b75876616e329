package site

// defaultTeamMembers is the stored wire form of the default roster.
const defaultTeamMembers = `[{"name":"Adio Lateefat Oluwakemi","role":"CEO & Founder","expertise":"Geriatric & Maternity Specialist","image":"/images/team_0.jpg"},{"name":"Dr. Samuel Okoro","role":"Lead Geriatrician","expertise":"Elderly Chronic Disease Management","image":"/images/team_1.jpg"},{"name":"Nurse Blessing Adeyemi","role":"Maternity Lead","expertise":"Obstetric & Fertility Support","image":"/images/team_2.jpg"},{"name":"Dr. Fatima Ibrahim","role":"Reproductive Health Expert","expertise":"Fertility & Family Planning","image":"/images/team_3.jpg"}]`

// DefaultRecord returns the fixed fallback record. It seeds an empty store on
// first boot and stands in for the server copy when a fetch fails. Callers
// receive a fresh copy on every call.
func DefaultRecord() Record {
	return Record{
		KeySiteName:         "Olatundun Nursing Home and Geriatric Center",
		KeyLogoText:         "O",
		KeyLogoURL:          "/images/logo_url.jpg",
		KeyHeroTitle:        "Compassionate Care for Every Stage of Life",
		KeyHeroSubtitle:     "Holistic healthcare for the elderly, mothers, and families — at our facility or in the comfort of your home.",
		KeyHeroImage:        "/images/hero_image.jpg",
		KeyAboutTitle:       "A Professional Healthcare Facility Committed to Compassionate Care",
		KeyAboutDescription: "Olatundun Nursing Home and Geriatric Center LTD is a professional healthcare facility committed to compassionate care for the elderly, mothers, and families.",
		KeyAboutImage:       "/images/about_image.png",
		KeyCEOName:          "Adio Lateefat Oluwakemi",
		KeyCEORole:          "Founder & Lead Nurse",
		KeyCEOImage:         "/images/ceo_image.jpg",
		KeyContactPhone:     "+234 800 000 0000",
		KeyContactEmail:     "olatundungeriatric25@gmail.com",
		KeyContactAddress:   "123 Healthcare Avenue, Osogbo, Osun State, Nigeria",
		KeyTeamMembers:      defaultTeamMembers,
	}
}

// StaleValueMigrations lists targeted value rollforwards applied at boot.
// Each entry rewrites a known-stale placeholder only while the stored value
// still equals it, so an admin-customized value is never touched.
type StaleValueMigration struct {
	Key string
	Old string
	New string
}

// StaleValueMigrations returns the rollforwards accumulated over past
// deployments.
func StaleValueMigrations() []StaleValueMigration {
	return []StaleValueMigration{
		{
			Key: KeyContactEmail,
			Old: "info@olatundunhealth.com",
			New: "olatundungeriatric25@gmail.com",
		},
	}
}
