package model

// FireStation maps one address to the number of the station covering it.
// The address is the identity key. Multiple addresses may map to the same
// station; one address maps to at most one station. The station number is
// stored as text, exactly as it appears in the data document.
type FireStation struct {
	Address string `json:"address"`
	Station string `json:"station"`
}
