package status_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/relabs-tech/safetynet/core/status"
)

func TestKindOf(t *testing.T) {
	err := status.Errorf(status.NotFound, "no such person")
	if status.KindOf(err) != status.NotFound {
		t.Fatalf("expected NotFound, got %v", status.KindOf(err))
	}

	// wrapped errors keep their kind
	wrapped := fmt.Errorf("lookup: %w", err)
	if !status.Is(wrapped, status.NotFound) {
		t.Fatal("wrapped error lost its kind")
	}

	// untagged errors are internal
	if status.KindOf(errors.New("boom")) != status.Internal {
		t.Fatal("untagged error must be Internal")
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		kind status.Kind
		code int
	}{
		{status.NotFound, http.StatusNotFound},
		{status.AlreadyExists, http.StatusConflict},
		{status.InvalidInput, http.StatusBadRequest},
		{status.Internal, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := status.Errorf(tc.kind, "some error")
			if got := status.HTTPStatus(err); got != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, got)
			}
		})
	}
}
