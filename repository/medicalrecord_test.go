package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/repository"
)

func TestMedicalRecordSaveNormalizesLists(t *testing.T) {
	records := repository.NewMedicalRecords(newStore(t))

	saved, err := records.Save(model.MedicalRecord{FirstName: "John", LastName: "Boyd", Birthdate: "03/06/1984"})
	require.NoError(t, err)
	assert.NotNil(t, saved.Medications)
	assert.NotNil(t, saved.Allergies)
	assert.Empty(t, saved.Medications)

	// the stored record has empty lists too
	found := records.FindByName("john", "boyd")
	require.Len(t, found, 1)
	assert.NotNil(t, found[0].Medications)
	assert.NotNil(t, found[0].Allergies)
}

func TestMedicalRecordSaveRejectsBlankIdentity(t *testing.T) {
	records := repository.NewMedicalRecords(newStore(t))

	_, err := records.Save(model.MedicalRecord{LastName: "Boyd"})
	require.Error(t, err)
	assert.Equal(t, status.InvalidInput, status.KindOf(err))

	_, err = records.Save(model.MedicalRecord{FirstName: "John", LastName: " "})
	require.Error(t, err)
	assert.Equal(t, status.InvalidInput, status.KindOf(err))
}

func TestMedicalRecordSaveReplacesExisting(t *testing.T) {
	records := repository.NewMedicalRecords(newStore(t))

	_, err := records.Save(model.MedicalRecord{FirstName: "John", LastName: "Boyd", Birthdate: "03/06/1984"})
	require.NoError(t, err)
	_, err = records.Save(model.MedicalRecord{FirstName: " JOHN", LastName: "boyd ", Birthdate: "03/06/1985", Medications: []string{"aznol:350mg"}})
	require.NoError(t, err)

	all := records.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "03/06/1985", all[0].Birthdate)
	assert.Equal(t, "JOHN", all[0].FirstName, "identity fields are trimmed at save time")
}

func TestMedicalRecordDelete(t *testing.T) {
	records := repository.NewMedicalRecords(newStore(t))

	_, err := records.Save(model.MedicalRecord{FirstName: "John", LastName: "Boyd"})
	require.NoError(t, err)

	removed, err := records.DeleteByName("JOHN", " boyd ")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = records.DeleteByName("John", "Boyd")
	require.NoError(t, err)
	assert.False(t, removed)

	// blank input yields false, not an error
	removed, err = records.DeleteByName("", "")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMedicalRecordExistsByName(t *testing.T) {
	records := repository.NewMedicalRecords(newStore(t))

	assert.False(t, records.ExistsByName("", ""))
	assert.False(t, records.ExistsByName("John", "Boyd"))

	_, err := records.Save(model.MedicalRecord{FirstName: "John", LastName: "Boyd"})
	require.NoError(t, err)
	assert.True(t, records.ExistsByName(" john ", "BOYD"))
}
