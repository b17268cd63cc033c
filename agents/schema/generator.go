/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas for configuration files.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// reflector builds strict config schemas: a field is required unless its
// jsonschema tag says otherwise, unknown keys are rejected and nested types
// are inlined so editors see one flat document.
func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
}

// Reflect derives the schema of v.
func Reflect(v any) *jsonschema.Schema {
	return reflector().Reflect(v)
}

// ReflectType allocates a zero value of T and reflects it to a schema.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// MarshalIndent renders the schema of T as indented JSON.
func MarshalIndent[T any]() ([]byte, error) {
	return json.MarshalIndent(ReflectType[T](), "", "  ")
}
