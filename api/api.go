/*
Package api realizes the SafetyNet REST surface on a gorilla mux router.

The handlers are a thin mapping layer: they decode the request, call the
repositories or the view builders, and map the outcome to an HTTP status by
the kind of the error, never by its message text.
*/
package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/relabs-tech/safetynet/core/logger"
	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/repository"
	"github.com/relabs-tech/safetynet/service"
	"github.com/relabs-tech/safetynet/store"
)

// API is the SafetyNet rest backend
type API struct {
	persons  *repository.Persons
	stations *repository.FireStations
	records  *repository.MedicalRecords
	views    *service.Views
}

// Builder is a builder helper for the API
type Builder struct {
	// Store is the backing document store. This is mandatory.
	Store *store.Store
	// Router is a mux router. This is mandatory.
	Router *mux.Router
}

// New realizes the actual API. It creates the repositories and view builders
// and adds the actual routes to the router.
func New(b *Builder) (*API, error) {
	if b.Store == nil {
		return nil, errors.New("store is missing")
	}
	if b.Router == nil {
		return nil, errors.New("router is missing")
	}
	persons := repository.NewPersons(b.Store)
	stations := repository.NewFireStations(b.Store)
	records := repository.NewMedicalRecords(b.Store)
	a := &API{
		persons:  persons,
		stations: stations,
		records:  records,
		views:    service.NewViews(persons, stations, records),
	}
	logger.AddRequestID(b.Router)
	a.handleRoutes(b.Router)
	return a, nil
}

// MustNew is like New but panics on failure
func MustNew(b *Builder) *API {
	a, err := New(b)
	if err != nil {
		panic(err)
	}
	return a
}

// handleRoutes adds all handlers for the REST surface
func (a *API) handleRoutes(router *mux.Router) {
	logger.Default().Debugln("api: handle routes")

	router.Use(metricsMiddleware)

	router.HandleFunc("/persons", a.listPersons).Methods(http.MethodGet)
	router.HandleFunc("/person", a.createPerson).Methods(http.MethodPost)
	router.HandleFunc("/person", a.updatePerson).Methods(http.MethodPut)
	router.HandleFunc("/person", a.deletePerson).Methods(http.MethodDelete)

	router.HandleFunc("/firestations", a.listFireStations).Methods(http.MethodGet)
	router.HandleFunc("/firestation", a.stationCoverage).Methods(http.MethodGet)
	router.HandleFunc("/firestation", a.createFireStation).Methods(http.MethodPost)
	router.HandleFunc("/firestation", a.updateFireStation).Methods(http.MethodPut)
	router.HandleFunc("/firestation", a.deleteFireStation).Methods(http.MethodDelete)

	router.HandleFunc("/medicalRecords", a.listMedicalRecords).Methods(http.MethodGet)
	router.HandleFunc("/medicalRecord", a.createMedicalRecord).Methods(http.MethodPost)
	router.HandleFunc("/medicalRecord", a.updateMedicalRecord).Methods(http.MethodPut)
	router.HandleFunc("/medicalRecord", a.deleteMedicalRecord).Methods(http.MethodDelete)

	router.HandleFunc("/childAlert", a.childAlert).Methods(http.MethodGet)
	router.HandleFunc("/phoneAlert", a.phoneAlert).Methods(http.MethodGet)
	router.HandleFunc("/fire", a.fire).Methods(http.MethodGet)
	router.HandleFunc("/flood/stations", a.flood).Methods(http.MethodGet)
	router.HandleFunc("/personInfo", a.personInfo).Methods(http.MethodGet)
	router.HandleFunc("/communityEmail", a.communityEmail).Methods(http.MethodGet)

	router.HandleFunc("/version", versionHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// writeJSON writes body as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Error 1201", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// writeError maps err to its HTTP status. Internal errors are logged with
// the request logger and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := status.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		logger.FromContext(r.Context()).WithError(err).Error("internal error")
		http.Error(w, "Error 1200", code)
		return
	}
	http.Error(w, err.Error(), code)
}
