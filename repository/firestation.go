package repository

import (
	"strconv"
	"strings"

	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/store"
)

// FireStations provides query and mutation access to the fire station
// collection. The address is the identity key.
type FireStations struct {
	store *store.Store
}

// NewFireStations creates a fire station repository on the given store.
func NewFireStations(s *store.Store) *FireStations {
	return &FireStations{store: s}
}

// FindAll returns a snapshot copy of all station mappings.
func (r *FireStations) FindAll() []model.FireStation {
	return r.store.FireStations()
}

// AddressesByStation returns the distinct addresses mapped to the given
// station number, in first-seen order. Duplicate (station, address) pairs in
// the source collapse to one entry.
func (r *FireStations) AddressesByStation(station int) []string {
	want := strconv.Itoa(station)
	seen := make(map[string]struct{})
	var out []string
	for _, fs := range r.store.FireStations() {
		if strings.TrimSpace(fs.Station) != want {
			continue
		}
		key := model.NormalizeKey(fs.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, fs.Address)
	}
	return out
}

// StationByAddress returns the station number covering the given address,
// and false if no station covers it.
func (r *FireStations) StationByAddress(address string) (string, bool) {
	if model.BlankKey(address) {
		return "", false
	}
	for _, fs := range r.store.FireStations() {
		if model.MatchKey(fs.Address, address) {
			return fs.Station, true
		}
	}
	return "", false
}

// ExistsByAddress reports whether a mapping for the given address is stored.
// Blank input yields false without reading the store.
func (r *FireStations) ExistsByAddress(address string) bool {
	if model.BlankKey(address) {
		return false
	}
	for _, fs := range r.store.FireStations() {
		if model.MatchKey(fs.Address, address) {
			return true
		}
	}
	return false
}

// Save stores the mapping with replace-or-insert semantics keyed by the
// address. Both fields are trimmed; a blank address or station number is
// rejected with an InvalidInput error before the store is touched.
func (r *FireStations) Save(fs model.FireStation) (model.FireStation, error) {
	if model.BlankKey(fs.Address) {
		return model.FireStation{}, status.Errorf(status.InvalidInput, "fire station needs an address")
	}
	if model.BlankKey(fs.Station) {
		return model.FireStation{}, status.Errorf(status.InvalidInput, "fire station needs a station number")
	}
	fs.Address = strings.TrimSpace(fs.Address)
	fs.Station = strings.TrimSpace(fs.Station)
	err := r.store.UpdateFireStations(func(stations []model.FireStation) ([]model.FireStation, bool) {
		for i := range stations {
			if model.MatchKey(stations[i].Address, fs.Address) {
				stations[i] = fs
				return stations, true
			}
		}
		return append(stations, fs), true
	})
	if err != nil {
		return model.FireStation{}, err
	}
	return fs, nil
}

// DeleteByAddress removes the mapping for the given address and reports
// whether anything was removed. Blank input yields false without touching
// the store.
func (r *FireStations) DeleteByAddress(address string) (bool, error) {
	if model.BlankKey(address) {
		return false, nil
	}
	removed := false
	err := r.store.UpdateFireStations(func(stations []model.FireStation) ([]model.FireStation, bool) {
		kept := stations[:0]
		for _, fs := range stations {
			if model.MatchKey(fs.Address, address) {
				removed = true
				continue
			}
			kept = append(kept, fs)
		}
		return kept, removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
