package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/relabs-tech/safetynet/store"
)

// newStore opens an empty store on a temp file that does not exist yet. The
// file gets created by the first mutation.
func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "document.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}
