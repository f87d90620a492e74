package repository_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/safetynet/core/status"
	"github.com/relabs-tech/safetynet/model"
	"github.com/relabs-tech/safetynet/repository"
)

func TestPersonSaveAndFindByName(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	saved, err := persons.Save(model.Person{FirstName: " John ", LastName: "Boyd", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "John", saved.FirstName, "identity fields are trimmed at save time")

	// the key matches regardless of case
	found := persons.FindByName("JOHN", "boyd")
	require.Len(t, found, 1)
	assert.Equal(t, saved, found[0])
}

func TestPersonSaveReplacesExisting(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	_, err := persons.Save(model.Person{FirstName: "John", LastName: "Boyd", Address: "1 Main St", City: "City"})
	require.NoError(t, err)

	// differently cased key with extra whitespace must replace, not insert
	_, err = persons.Save(model.Person{FirstName: "john", LastName: " BOYD ", Address: "2 Oak St"})
	require.NoError(t, err)

	all := persons.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "2 Oak St", all[0].Address)
	assert.Equal(t, "BOYD", all[0].LastName)
}

func TestPersonSaveRejectsBlankIdentity(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	_, err := persons.Save(model.Person{FirstName: "   ", LastName: "Boyd"})
	require.Error(t, err)
	assert.Equal(t, status.InvalidInput, status.KindOf(err))

	_, err = persons.Save(model.Person{FirstName: "John"})
	require.Error(t, err)
	assert.Equal(t, status.InvalidInput, status.KindOf(err))
}

func TestPersonDelete(t *testing.T) {
	s := newStore(t)
	persons := repository.NewPersons(s)

	_, err := persons.Save(model.Person{FirstName: "John", LastName: "Boyd"})
	require.NoError(t, err)

	removed, err := persons.DeleteByName(" JOHN ", "boyd")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, persons.FindAll())

	// deleting again finds nothing
	removed, err = persons.DeleteByName("John", "Boyd")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPersonDeleteMissingDoesNotRewrite(t *testing.T) {
	s := newStore(t)
	persons := repository.NewPersons(s)

	removed, err := persons.DeleteByName("John", "Boyd")
	require.NoError(t, err)
	assert.False(t, removed)

	// no rewrite happened, the backing file was never created
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestPersonFindByAddressIn(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	_, err := persons.Save(model.Person{FirstName: "John", LastName: "Boyd", Address: "1 Main St"})
	require.NoError(t, err)

	// case-insensitive address match
	found := persons.FindByAddressIn([]string{"1 MAIN ST"})
	require.Len(t, found, 1)
	assert.Equal(t, "John", found[0].FirstName)

	// empty input returns empty without reading the store
	assert.Empty(t, persons.FindByAddressIn(nil))
	assert.Empty(t, persons.FindByAddressIn([]string{}))

	// unknown address
	assert.Empty(t, persons.FindByAddressIn([]string{"9 Elm St"}))
}

func TestPersonFilters(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	for _, p := range []model.Person{
		{FirstName: "John", LastName: "Boyd", Address: "1509 Culver St", City: "Culver"},
		{FirstName: "Jacob", LastName: "Boyd", Address: "1509 Culver St", City: "Culver"},
		{FirstName: "Sophia", LastName: "Zemicks", Address: "892 Downing Ct", City: "Springfield"},
	} {
		_, err := persons.Save(p)
		require.NoError(t, err)
	}

	assert.Len(t, persons.FindByAddress("1509 culver st"), 2)
	assert.Len(t, persons.FindByLastName(" boyd "), 2)
	assert.Len(t, persons.FindByCity("CULVER"), 2)
	assert.Len(t, persons.FindByCity(" culver "), 2)
	assert.Empty(t, persons.FindByCity("Paris"))
}

func TestPersonExistsByName(t *testing.T) {
	persons := repository.NewPersons(newStore(t))

	_, err := persons.Save(model.Person{FirstName: "John", LastName: "Boyd"})
	require.NoError(t, err)

	assert.True(t, persons.ExistsByName("john", " BOYD "))
	assert.False(t, persons.ExistsByName("Jane", "Boyd"))

	// blank input never consults the store
	assert.False(t, persons.ExistsByName("", "Boyd"))
	assert.False(t, persons.ExistsByName("John", "   "))
	assert.Empty(t, persons.FindByName("", "Boyd"))
}
