package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/safetynet/store"
)

func TestWatchReloadsExternalChanges(t *testing.T) {
	path := writeDocument(t, sampleDocument)
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	// external edit: second person appears
	edited := `{
  "persons": [
    { "firstName": "John", "lastName": "Boyd" },
    { "firstName": "Peter", "lastName": "Duncan" }
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	assert.Eventually(t, func() bool {
		return len(s.Persons()) == 2
	}, 3*time.Second, 10*time.Millisecond, "external change was not reloaded")
}

func TestWatchKeepsPreviousDocumentOnInvalidChange(t *testing.T) {
	path := writeDocument(t, sampleDocument)
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte(`{"persons":`), 0644))

	// the invalid document must not replace the loaded one
	time.Sleep(200 * time.Millisecond)
	require.Len(t, s.Persons(), 1)
	assert.Equal(t, "John", s.Persons()[0].FirstName)
}
