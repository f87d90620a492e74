/*
Package repository implements the entity repositories over the document
store. All mutations are read-modify-write over the full collection and push
the updated collection back to the store; all lookups scan snapshot copies.

Identity-key matching is uniformly case-insensitive after trimming, for
every read, existence, save and delete path.
*/
package repository

import (
	"strings"

	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/store"
)

// Persons provides query and mutation access to the person collection.
type Persons struct {
	store *store.Store
}

// NewPersons creates a person repository on the given store.
func NewPersons(s *store.Store) *Persons {
	return &Persons{store: s}
}

// FindAll returns a snapshot copy of all persons.
func (r *Persons) FindAll() []model.Person {
	return r.store.Persons()
}

// FindByAddress returns all persons living at the given address.
func (r *Persons) FindByAddress(address string) []model.Person {
	var out []model.Person
	for _, p := range r.store.Persons() {
		if model.MatchKey(p.Address, address) {
			out = append(out, p)
		}
	}
	return out
}

// FindByAddressIn returns all persons living at any of the given addresses.
// Empty input yields an empty result without reading the store.
func (r *Persons) FindByAddressIn(addresses []string) []model.Person {
	if len(addresses) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		want[model.NormalizeKey(a)] = struct{}{}
	}
	var out []model.Person
	for _, p := range r.store.Persons() {
		if _, ok := want[model.NormalizeKey(p.Address)]; ok {
			out = append(out, p)
		}
	}
	return out
}

// FindByLastName returns all persons with the given last name.
func (r *Persons) FindByLastName(lastName string) []model.Person {
	var out []model.Person
	for _, p := range r.store.Persons() {
		if model.MatchKey(p.LastName, lastName) {
			out = append(out, p)
		}
	}
	return out
}

// FindByCity returns all persons living in the given city.
func (r *Persons) FindByCity(city string) []model.Person {
	var out []model.Person
	for _, p := range r.store.Persons() {
		if model.MatchKey(p.City, city) {
			out = append(out, p)
		}
	}
	return out
}

// FindByName returns the persons carrying the given identity key. Blank key
// components yield an empty result.
func (r *Persons) FindByName(firstName, lastName string) []model.Person {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return nil
	}
	var out []model.Person
	for _, p := range r.store.Persons() {
		if p.HasName(firstName, lastName) {
			out = append(out, p)
		}
	}
	return out
}

// ExistsByName reports whether a person with the given identity key is
// stored. Blank input yields false without reading the store.
func (r *Persons) ExistsByName(firstName, lastName string) bool {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return false
	}
	for _, p := range r.store.Persons() {
		if p.HasName(firstName, lastName) {
			return true
		}
	}
	return false
}

// Save stores the person with replace-or-insert semantics keyed by the
// identity key. Identity fields are trimmed; blank identity fields are
// rejected with an InvalidInput error before the store is touched.
// The stored person is returned.
func (r *Persons) Save(p model.Person) (model.Person, error) {
	if model.BlankKey(p.FirstName) || model.BlankKey(p.LastName) {
		return model.Person{}, status.Errorf(status.InvalidInput, "person needs a first and a last name")
	}
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	err := r.store.UpdatePersons(func(persons []model.Person) ([]model.Person, bool) {
		for i := range persons {
			if persons[i].HasName(p.FirstName, p.LastName) {
				persons[i] = p
				return persons, true
			}
		}
		return append(persons, p), true
	})
	if err != nil {
		return model.Person{}, err
	}
	return p, nil
}

// DeleteByName removes the person with the given identity key and reports
// whether anything was removed. The document is rewritten only if so; blank
// input yields false without touching the store.
func (r *Persons) DeleteByName(firstName, lastName string) (bool, error) {
	if model.BlankKey(firstName) || model.BlankKey(lastName) {
		return false, nil
	}
	removed := false
	err := r.store.UpdatePersons(func(persons []model.Person) ([]model.Person, bool) {
		kept := persons[:0]
		for _, p := range persons {
			if p.HasName(firstName, lastName) {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
