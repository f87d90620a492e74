package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/relabs-tech/safetynet/core/logger"
	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
)

func (a *API) listPersons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.persons.FindAll())
}

func (a *API) createPerson(w http.ResponseWriter, r *http.Request) {
	var p model.Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if a.persons.ExistsByName(p.FirstName, p.LastName) {
		writeError(w, r, status.Errorf(status.AlreadyExists, "person %s %s already exists", p.FirstName, p.LastName))
		return
	}
	saved, err := a.persons.Save(p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Infoln("created person:", saved.FirstName, saved.LastName)
	writeJSON(w, http.StatusCreated, saved)
}

func (a *API) updatePerson(w http.ResponseWriter, r *http.Request) {
	var p model.Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !a.persons.ExistsByName(p.FirstName, p.LastName) {
		writeError(w, r, status.Errorf(status.NotFound, "no such person"))
		return
	}
	saved, err := a.persons.Save(p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (a *API) deletePerson(w http.ResponseWriter, r *http.Request) {
	firstName := r.URL.Query().Get("firstName")
	lastName := r.URL.Query().Get("lastName")
	removed, err := a.persons.DeleteByName(firstName, lastName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !removed {
		http.Error(w, "no such person", http.StatusNotFound)
		return
	}
	logger.FromContext(r.Context()).Infoln("deleted person:", firstName, lastName)
	w.WriteHeader(http.StatusNoContent)
}
