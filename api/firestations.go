package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/relabs-tech/safetynet/core/logger"
	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
)

func (a *API) listFireStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stations.FindAll())
}

// stationCoverage serves GET /firestation?stationNumber=N, the coverage
// summary of one station.
func (a *API) stationCoverage(w http.ResponseWriter, r *http.Request) {
	station, err := strconv.Atoi(r.URL.Query().Get("stationNumber"))
	if err != nil {
		http.Error(w, "parameter 'stationNumber': "+err.Error(), http.StatusBadRequest)
		return
	}
	coverage, ok := a.views.Coverage(station)
	if !ok {
		http.Error(w, "no persons covered by station "+strconv.Itoa(station), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, coverage)
}

func (a *API) createFireStation(w http.ResponseWriter, r *http.Request) {
	var fs model.FireStation
	if err := json.NewDecoder(r.Body).Decode(&fs); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if a.stations.ExistsByAddress(fs.Address) {
		writeError(w, r, status.Errorf(status.AlreadyExists, "mapping for address %s already exists", fs.Address))
		return
	}
	saved, err := a.stations.Save(fs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Infoln("created station mapping:", saved.Address, "->", saved.Station)
	writeJSON(w, http.StatusCreated, saved)
}

func (a *API) updateFireStation(w http.ResponseWriter, r *http.Request) {
	var fs model.FireStation
	if err := json.NewDecoder(r.Body).Decode(&fs); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !a.stations.ExistsByAddress(fs.Address) {
		writeError(w, r, status.Errorf(status.NotFound, "no mapping for address %s", fs.Address))
		return
	}
	saved, err := a.stations.Save(fs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (a *API) deleteFireStation(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	removed, err := a.stations.DeleteByAddress(address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !removed {
		http.Error(w, "no such mapping", http.StatusNotFound)
		return
	}
	logger.FromContext(r.Context()).Infoln("deleted station mapping:", address)
	w.WriteHeader(http.StatusNoContent)
}
