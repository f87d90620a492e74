package api

import "net/http"

// Version contains the version of the running service. It is not set by
// default, but it can be set at build time using the linker flag
// -X github.com/relabs-tech/safetynet/api.Version=1.2.3
var Version string = "unset"

func versionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Version string `json:"version"`
	}{Version})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{"up"})
}
