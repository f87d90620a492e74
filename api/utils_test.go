package api_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"

	"github.com/relabs-tech/safetynet/api"
	"github.com/relabs-tech/safetynet/core/client"
	"github.com/relabs-tech/safetynet/store"
)

// TestService is one API instance on a fresh temp data document, together
// with an in-process client talking to its router.
type TestService struct {
	Store  *store.Store
	Router *mux.Router
	client client.Client
}

// CreateTestService creates a new service that can be used for testing. The
// data document starts out empty.
func CreateTestService(t *testing.T) *TestService {
	t.Helper()
	return createTestServiceInternal(t, "")
}

// CreateTestServiceWithData is CreateTestService with a pre-seeded document.
func CreateTestServiceWithData(t *testing.T, document string) *TestService {
	t.Helper()
	return createTestServiceInternal(t, document)
}

func createTestServiceInternal(t *testing.T, document string) *TestService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "document.json")
	if document != "" {
		if err := os.WriteFile(path, []byte(document), 0644); err != nil {
			t.Fatal(err)
		}
	}

	s, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	router := mux.NewRouter()
	api.MustNew(&api.Builder{
		Store:  s,
		Router: router,
	})

	return &TestService{
		Store:  s,
		Router: router,
		client: client.NewWithRouter(router),
	}
}
