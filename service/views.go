/*
Package service builds the derived read models that join persons, fire
stations and medical records at request time. Joins are computed fresh from
repository snapshots on every call; nothing is cached.

Every view returns an ok flag instead of an error when no matching persons
exist; the REST layer maps the absent result to a 404.
*/
package service

import (
	"time"

	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/repository"
)

// ChildAgeLimit is the highest age, in full years, counted as a child.
const ChildAgeLimit = 18

// Views joins the three repositories into response-shaped aggregates.
type Views struct {
	persons  *repository.Persons
	stations *repository.FireStations
	records  *repository.MedicalRecords
	now      func() time.Time
}

// NewViews creates the view builder over the given repositories.
func NewViews(persons *repository.Persons, stations *repository.FireStations, records *repository.MedicalRecords) *Views {
	return &Views{
		persons:  persons,
		stations: stations,
		records:  records,
		now:      time.Now,
	}
}

// recordFor returns the medical record for a person, if one exists. The join
// never fails on a missing record; persons without one appear with zero age
// and empty medication and allergy lists.
func (v *Views) recordFor(p model.Person) (model.MedicalRecord, bool) {
	records := v.records.FindByName(p.FirstName, p.LastName)
	if len(records) == 0 {
		return model.MedicalRecord{}, false
	}
	return records[0], true
}

func (v *Views) ageOf(p model.Person) (int, bool) {
	m, ok := v.recordFor(p)
	if !ok {
		return 0, false
	}
	return m.Age(v.now())
}

// Child is one child in a ChildAlert.
type Child struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// HouseholdMember is a co-resident listed alongside the children.
type HouseholdMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ChildAlert lists the children at one address and the other members of
// their household.
type ChildAlert struct {
	Children  []Child           `json:"children"`
	Household []HouseholdMember `json:"household"`
}

// ChildAlert classifies the residents of the given address by the child age
// threshold. ok is false when nobody lives at the address.
func (v *Views) ChildAlert(address string) (ChildAlert, bool) {
	residents := v.persons.FindByAddress(address)
	if len(residents) == 0 {
		return ChildAlert{}, false
	}
	out := ChildAlert{Children: []Child{}, Household: []HouseholdMember{}}
	for _, p := range residents {
		age, known := v.ageOf(p)
		if known && age <= ChildAgeLimit {
			out.Children = append(out.Children, Child{FirstName: p.FirstName, LastName: p.LastName, Age: age})
		} else {
			out.Household = append(out.Household, HouseholdMember{FirstName: p.FirstName, LastName: p.LastName})
		}
	}
	return out, true
}

// Resident is one person in a fire or flood summary, with the medical
// information an emergency responder needs on site.
type Resident struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// FireSummary is the fire view of one address: its residents and the number
// of the station covering it.
type FireSummary struct {
	Station   string     `json:"station"`
	Residents []Resident `json:"residents"`
}

// Fire returns the fire summary for the given address. ok is false when
// nobody lives there.
func (v *Views) Fire(address string) (FireSummary, bool) {
	residents := v.persons.FindByAddress(address)
	if len(residents) == 0 {
		return FireSummary{}, false
	}
	station, _ := v.stations.StationByAddress(address)
	out := FireSummary{Station: station, Residents: make([]Resident, 0, len(residents))}
	for _, p := range residents {
		out.Residents = append(out.Residents, v.resident(p))
	}
	return out, true
}

func (v *Views) resident(p model.Person) Resident {
	r := Resident{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		Medications: []string{},
		Allergies:   []string{},
	}
	if m, ok := v.recordFor(p); ok {
		if age, known := m.Age(v.now()); known {
			r.Age = age
		}
		if m.Medications != nil {
			r.Medications = m.Medications
		}
		if m.Allergies != nil {
			r.Allergies = m.Allergies
		}
	}
	return r
}

// PersonInfo is the medical profile of one person, keyed by last name.
type PersonInfo struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Address     string   `json:"address"`
	Age         int      `json:"age"`
	Email       string   `json:"email"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// PersonInfo returns the profiles of all persons with the given last name.
// ok is false when there are none.
func (v *Views) PersonInfo(lastName string) ([]PersonInfo, bool) {
	persons := v.persons.FindByLastName(lastName)
	if len(persons) == 0 {
		return nil, false
	}
	out := make([]PersonInfo, 0, len(persons))
	for _, p := range persons {
		r := v.resident(p)
		out = append(out, PersonInfo{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Age:         r.Age,
			Email:       p.Email,
			Medications: r.Medications,
			Allergies:   r.Allergies,
		})
	}
	return out, true
}

// CommunityEmail returns the distinct email addresses of everybody living in
// the given city. ok is false when nobody does.
func (v *Views) CommunityEmail(city string) ([]string, bool) {
	persons := v.persons.FindByCity(city)
	if len(persons) == 0 {
		return nil, false
	}
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range persons {
		if p.Email == "" {
			continue
		}
		if _, ok := seen[p.Email]; ok {
			continue
		}
		seen[p.Email] = struct{}{}
		out = append(out, p.Email)
	}
	return out, true
}

// PhoneAlert returns the distinct phone numbers of everybody living at an
// address covered by the given station. ok is false when the station covers
// nobody.
func (v *Views) PhoneAlert(station int) ([]string, bool) {
	persons := v.persons.FindByAddressIn(v.stations.AddressesByStation(station))
	if len(persons) == 0 {
		return nil, false
	}
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range persons {
		if p.Phone == "" {
			continue
		}
		if _, ok := seen[p.Phone]; ok {
			continue
		}
		seen[p.Phone] = struct{}{}
		out = append(out, p.Phone)
	}
	return out, true
}

// FloodHousehold is one address in a flood summary with all its residents.
type FloodHousehold struct {
	Address   string     `json:"address"`
	Residents []Resident `json:"residents"`
}

// Flood returns the households covered by the given stations, grouped by
// address. ok is false when the stations cover nobody.
func (v *Views) Flood(stations []int) ([]FloodHousehold, bool) {
	seen := make(map[string]struct{})
	var addresses []string
	for _, n := range stations {
		for _, a := range v.stations.AddressesByStation(n) {
			key := model.NormalizeKey(a)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			addresses = append(addresses, a)
		}
	}
	out := []FloodHousehold{}
	for _, a := range addresses {
		residents := v.persons.FindByAddress(a)
		if len(residents) == 0 {
			continue
		}
		household := FloodHousehold{Address: a, Residents: make([]Resident, 0, len(residents))}
		for _, p := range residents {
			household.Residents = append(household.Residents, v.resident(p))
		}
		out = append(out, household)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// CoveredPerson is one person in a station coverage summary.
type CoveredPerson struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// Coverage lists everybody covered by one station with adult and child
// counts. Persons with an unknown age count as adults.
type Coverage struct {
	Persons  []CoveredPerson `json:"persons"`
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
}

// Coverage returns the coverage summary for the given station. ok is false
// when the station covers nobody.
func (v *Views) Coverage(station int) (Coverage, bool) {
	persons := v.persons.FindByAddressIn(v.stations.AddressesByStation(station))
	if len(persons) == 0 {
		return Coverage{}, false
	}
	out := Coverage{Persons: make([]CoveredPerson, 0, len(persons))}
	for _, p := range persons {
		out.Persons = append(out.Persons, CoveredPerson{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Address:   p.Address,
			Phone:     p.Phone,
		})
		if age, known := v.ageOf(p); known && age <= ChildAgeLimit {
			out.Children++
		} else {
			out.Adults++
		}
	}
	return out, true
}
