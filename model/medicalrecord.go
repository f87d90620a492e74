package model

import "time"

// BirthdateLayout is the date format used by the data document.
const BirthdateLayout = "01/02/2006"

// MedicalRecord holds the medical information for one person, keyed by the
// same (FirstName, LastName) identity key. Medications and Allergies are
// never nil in a stored record.
type MedicalRecord struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Birthdate   string   `json:"birthdate"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// HasName reports whether this record carries the given identity key.
func (m MedicalRecord) HasName(firstName, lastName string) bool {
	return MatchKey(m.FirstName, firstName) && MatchKey(m.LastName, lastName)
}

// Age returns the age in full years at the given time. It returns false if
// the birthdate is missing, malformed or in the future.
func (m MedicalRecord) Age(now time.Time) (int, bool) {
	born, err := time.Parse(BirthdateLayout, m.Birthdate)
	if err != nil {
		return 0, false
	}
	years := now.Year() - born.Year()
	anniversary := time.Date(now.Year(), born.Month(), born.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}
