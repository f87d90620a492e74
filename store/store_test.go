package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/store"
)

const sampleDocument = `{
  "persons": [
    { "firstName": "John", "lastName": "Boyd", "address": "1509 Culver St", "city": "Culver", "zip": "97451", "phone": "841-874-6512", "email": "jaboyd@email.com" }
  ],
  "firestations": [
    { "address": "1509 Culver St", "station": "3" }
  ],
  "medicalrecords": [
    { "firstName": "John", "lastName": "Boyd", "birthdate": "03/06/1984", "medications": ["aznol:350mg"], "allergies": ["nillacilan"] }
  ]
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "document.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "document.json")
	s, err := store.Open(path)
	require.NoError(t, err)
	assert.Empty(t, s.Persons())
	assert.Empty(t, s.FireStations())
	assert.Empty(t, s.MedicalRecords())
}

func TestOpenSampleDocument(t *testing.T) {
	s, err := store.Open(writeDocument(t, sampleDocument))
	require.NoError(t, err)
	persons := s.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, "John", persons[0].FirstName)
	require.Len(t, s.FireStations(), 1)
	require.Len(t, s.MedicalRecords(), 1)
}

func TestOpenRejectsInvalidDocument(t *testing.T) {
	// lastName is required by the document schema
	_, err := store.Open(writeDocument(t, `{"persons":[{"firstName":"John"}]}`))
	require.Error(t, err)
}

func TestOpenRejectsMalformedJSON(t *testing.T) {
	_, err := store.Open(writeDocument(t, `{"persons":`))
	require.Error(t, err)
}

func TestUpdateRewritesDocument(t *testing.T) {
	path := writeDocument(t, sampleDocument)
	s, err := store.Open(path)
	require.NoError(t, err)

	err = s.UpdatePersons(func(persons []model.Person) ([]model.Person, bool) {
		return append(persons, model.Person{FirstName: "Peter", LastName: "Duncan"}), true
	})
	require.NoError(t, err)
	require.Len(t, s.Persons(), 2)

	// a fresh store sees the rewritten document
	reopened, err := store.Open(path)
	require.NoError(t, err)
	assert.Len(t, reopened.Persons(), 2)
}

func TestUpdateWithoutChangeDoesNotTouchDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "document.json")
	s, err := store.Open(path)
	require.NoError(t, err)

	err = s.UpdatePersons(func(persons []model.Person) ([]model.Person, bool) {
		return persons, false
	})
	require.NoError(t, err)

	// no rewrite, so the missing file must still be missing
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, err := store.Open(writeDocument(t, sampleDocument))
	require.NoError(t, err)

	snapshot := s.Persons()
	snapshot[0].FirstName = "Mallory"

	assert.Equal(t, "John", s.Persons()[0].FirstName)
}

func TestMutatorSeesCopy(t *testing.T) {
	s, err := store.Open(writeDocument(t, sampleDocument))
	require.NoError(t, err)

	err = s.UpdatePersons(func(persons []model.Person) ([]model.Person, bool) {
		persons[0].FirstName = "Mallory"
		return persons, false // discarded, must not leak into the store
	})
	require.NoError(t, err)
	assert.Equal(t, "John", s.Persons()[0].FirstName)
}
