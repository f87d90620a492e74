package repository

import (
	"strings"

	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/store"
)

// MedicalRecords provides query and mutation access to the medical record
// collection, keyed like Persons by the (firstName, lastName) identity key.
type MedicalRecords struct {
	store *store.Store
}

// NewMedicalRecords creates a medical record repository on the given store.
func NewMedicalRecords(s *store.Store) *MedicalRecords {
	return &MedicalRecords{store: s}
}

// FindAll returns a snapshot copy of all medical records.
func (r *MedicalRecords) FindAll() []model.MedicalRecord {
	return r.store.MedicalRecords()
}

// FindByName returns the records carrying the given identity key. Blank key
// components yield an empty result.
func (r *MedicalRecords) FindByName(firstName, lastName string) []model.MedicalRecord {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return nil
	}
	var out []model.MedicalRecord
	for _, m := range r.store.MedicalRecords() {
		if m.HasName(firstName, lastName) {
			out = append(out, m)
		}
	}
	return out
}

// ExistsByName reports whether a record with the given identity key is
// stored. Blank input yields false without reading the store.
func (r *MedicalRecords) ExistsByName(firstName, lastName string) bool {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return false
	}
	for _, m := range r.store.MedicalRecords() {
		if m.HasName(firstName, lastName) {
			return true
		}
	}
	return false
}

// Save stores the record with replace-or-insert semantics keyed by the
// identity key. Identity fields are trimmed, blank identity fields are
// rejected with an InvalidInput error, and nil medication or allergy lists
// are normalized to empty lists in the stored and returned record.
func (r *MedicalRecords) Save(m model.MedicalRecord) (model.MedicalRecord, error) {
	if model.BlankKey(m.FirstName) || model.BlankKey(m.LastName) {
		return model.MedicalRecord{}, status.Errorf(status.InvalidInput, "medical record needs a first and a last name")
	}
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	if m.Medications == nil {
		m.Medications = []string{}
	}
	if m.Allergies == nil {
		m.Allergies = []string{}
	}
	err := r.store.UpdateMedicalRecords(func(records []model.MedicalRecord) ([]model.MedicalRecord, bool) {
		for i := range records {
			if records[i].HasName(m.FirstName, m.LastName) {
				records[i] = m
				return records, true
			}
		}
		return append(records, m), true
	})
	if err != nil {
		return model.MedicalRecord{}, err
	}
	return m, nil
}

// DeleteByName removes the record with the given identity key and reports
// whether anything was removed. The document is rewritten only if so; blank
// input yields false without touching the store.
func (r *MedicalRecords) DeleteByName(firstName, lastName string) (bool, error) {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return false, nil
	}
	removed := false
	err := r.store.UpdateMedicalRecords(func(records []model.MedicalRecord) ([]model.MedicalRecord, bool) {
		kept := records[:0]
		for _, m := range records {
			if m.HasName(firstName, lastName) {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		return kept, removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
