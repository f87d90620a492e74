/*
Package store implements the file-backed document store behind the three
entity repositories.

The whole document is loaded into memory when the store is opened and
validated against its JSON schema first. Reads hand out snapshot copies and
never block writers for long; mutations run under one writer lock and, when
they report a change, rewrite the full document atomically (temp file plus
rename) before the lock is released. Concurrent writers therefore cannot
lose updates.
*/
package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/relabs-tech/safetynet/core/schema"
	"github.com/relabs-tech/safetynet/model"
)

//go:embed document_schema.json
var documentSchema string

// Store is the file-backed document store.
type Store struct {
	path      string
	validator *schema.Validator

	mu  sync.RWMutex
	doc Document

	watcher *watcher
}

// Open reads, validates and loads the document at path. A missing file
// yields an empty document; the file is then created on the first mutation.
func Open(path string) (*Store, error) {
	validator, err := schema.NewValidator(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("cannot compile document schema: %w", err)
	}
	s := &Store{path: path, validator: validator}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the path of the backing document.
func (s *Store) Path() string {
	return s.path
}

// load reads the backing file into memory, schema validation first.
func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		s.doc = Document{}
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.validator.ValidateBytes(raw); err != nil {
		return fmt.Errorf("document %s: %w", s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("document %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Persons returns a snapshot copy of the person collection.
func (s *Store) Persons() []model.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Person(nil), s.doc.Persons...)
}

// FireStations returns a snapshot copy of the fire station collection.
func (s *Store) FireStations() []model.FireStation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.FireStation(nil), s.doc.FireStations...)
}

// MedicalRecords returns a snapshot copy of the medical record collection.
func (s *Store) MedicalRecords() []model.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.MedicalRecord(nil), s.doc.MedicalRecords...)
}

// UpdatePersons runs mutate on a copy of the person collection under the
// writer lock. If mutate reports a change, the full document is rewritten
// before the lock is released; otherwise nothing touches the disk.
func (s *Store) UpdatePersons(mutate func([]model.Person) ([]model.Person, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := mutate(append([]model.Person(nil), s.doc.Persons...))
	if !changed {
		return nil
	}
	doc := s.doc
	doc.Persons = next
	if err := s.rewrite(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// UpdateFireStations is UpdatePersons for the fire station collection.
func (s *Store) UpdateFireStations(mutate func([]model.FireStation) ([]model.FireStation, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := mutate(append([]model.FireStation(nil), s.doc.FireStations...))
	if !changed {
		return nil
	}
	doc := s.doc
	doc.FireStations = next
	if err := s.rewrite(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// UpdateMedicalRecords is UpdatePersons for the medical record collection.
func (s *Store) UpdateMedicalRecords(mutate func([]model.MedicalRecord) ([]model.MedicalRecord, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := mutate(append([]model.MedicalRecord(nil), s.doc.MedicalRecords...))
	if !changed {
		return nil
	}
	doc := s.doc
	doc.MedicalRecords = next
	if err := s.rewrite(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// rewrite serializes the document to a temp file and renames it over the
// backing file, so readers of the file never see a partial document.
func (s *Store) rewrite(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	rewritesTotal.Inc()
	return nil
}

// Close stops the watcher, if one is running.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.close()
	}
	return nil
}
