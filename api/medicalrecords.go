package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/relabs-tech/safetynet/core/logger"
	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
)

func (a *API) listMedicalRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.records.FindAll())
}

func (a *API) createMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var m model.MedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if a.records.ExistsByName(m.FirstName, m.LastName) {
		writeError(w, r, status.Errorf(status.AlreadyExists, "medical record for %s %s already exists", m.FirstName, m.LastName))
		return
	}
	saved, err := a.records.Save(m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Infoln("created medical record:", saved.FirstName, saved.LastName)
	writeJSON(w, http.StatusCreated, saved)
}

func (a *API) updateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var m model.MedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !a.records.ExistsByName(m.FirstName, m.LastName) {
		writeError(w, r, status.Errorf(status.NotFound, "no such medical record"))
		return
	}
	saved, err := a.records.Save(m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (a *API) deleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	firstName := r.URL.Query().Get("firstName")
	lastName := r.URL.Query().Get("lastName")
	removed, err := a.records.DeleteByName(firstName, lastName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !removed {
		http.Error(w, "no such medical record", http.StatusNotFound)
		return
	}
	logger.FromContext(r.Context()).Infoln("deleted medical record:", firstName, lastName)
	w.WriteHeader(http.StatusNoContent)
}
