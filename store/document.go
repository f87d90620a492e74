package store

import "github.com/relabs-tech/safetynet/model"

// Document is the in-memory image of the backing JSON document. It holds the
// three independently owned entity collections; there is no referential
// integrity across them.
type Document struct {
	Persons        []model.Person        `json:"persons"`
	FireStations   []model.FireStation   `json:"firestations"`
	MedicalRecords []model.MedicalRecord `json:"medicalrecords"`
}
