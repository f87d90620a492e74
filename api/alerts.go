package api

import (
	"net/http"
	"strconv"
	"strings"
)

func (a *API) childAlert(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	alert, ok := a.views.ChildAlert(address)
	if !ok {
		http.Error(w, "nobody lives at this address", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func (a *API) phoneAlert(w http.ResponseWriter, r *http.Request) {
	station, err := strconv.Atoi(r.URL.Query().Get("firestation"))
	if err != nil {
		http.Error(w, "parameter 'firestation': "+err.Error(), http.StatusBadRequest)
		return
	}
	phones, ok := a.views.PhoneAlert(station)
	if !ok {
		http.Error(w, "no persons covered by station "+strconv.Itoa(station), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, phones)
}

func (a *API) fire(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	summary, ok := a.views.Fire(address)
	if !ok {
		http.Error(w, "nobody lives at this address", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) flood(w http.ResponseWriter, r *http.Request) {
	var stations []int
	for _, s := range strings.Split(r.URL.Query().Get("stations"), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "parameter 'stations': "+err.Error(), http.StatusBadRequest)
			return
		}
		stations = append(stations, n)
	}
	households, ok := a.views.Flood(stations)
	if !ok {
		http.Error(w, "no persons covered by these stations", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, households)
}

func (a *API) personInfo(w http.ResponseWriter, r *http.Request) {
	lastName := r.URL.Query().Get("lastName")
	infos, ok := a.views.PersonInfo(lastName)
	if !ok {
		http.Error(w, "no such person", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

func (a *API) communityEmail(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	emails, ok := a.views.CommunityEmail(city)
	if !ok {
		http.Error(w, "nobody lives in this city", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, emails)
}
