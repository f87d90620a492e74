// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package schema

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/xeipuuv/gojsonschema"
)

// Validator is a utility to validate a JSON document against a given schema
type Validator struct {
	id     string
	schema *gojsonschema.Schema
}

// NewValidator creates a new Validator for the given JSON schema. The schema
// must carry an $id.
func NewValidator(schemaJSON string) (*Validator, error) {
	s := struct {
		ID string `json:"$id"`
	}{}
	err := json.Unmarshal([]byte(schemaJSON), &s)
	if err != nil {
		return nil, fmt.Errorf("parse error '%v' in schema: '%s'", err, schemaJSON)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("schema does not contain $id: '%s'", schemaJSON)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("cannot compile schema %s %s", s.ID, err)
	}
	return &Validator{id: s.ID, schema: schema}, nil
}

// ID returns the $id of the compiled schema
func (v *Validator) ID() string {
	return v.id
}

// ValidateBytes validates the given json document. If no error is returned,
// then the passed json is valid
func (v *Validator) ValidateBytes(doc []byte) error {
	return v.validate(gojsonschema.NewBytesLoader(doc))
}

// ValidateStruct validates the given json as a struct. If no error is returned,
// then the passed json is valid
func (v *Validator) ValidateStruct(doc interface{}) error {
	return v.validate(gojsonschema.NewGoLoader(doc))
}

// validate validates the given loader. If no error is returned, then the passed json
// is valid
func (v *Validator) validate(loader gojsonschema.JSONLoader) error {
	result, err := v.schema.Validate(loader)
	if err != nil {
		return fmt.Errorf("cannot validate with schema %s %s", v.id, err)
	}

	if !result.Valid() {
		err := "the document is not valid :\n"
		for _, e := range result.Errors() {
			err += fmt.Sprintf("- %s\n", e)
		}
		return errors.New(err)
	}
	return nil
}
