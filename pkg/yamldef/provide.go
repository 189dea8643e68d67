/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package yamldef loads attribute models from YAML documents.
//
// The document is a list of type declarations:
//
//	types:
//	  - name: ui.Widget
//	    comment: base of the hierarchy
//	    attrs:
//	      - name: width
//	        kind: int32
//	        ops: [Get, Set, Construct]
//	      - name: tooltip
//	        kind: string
//	        ops: [Get, Set, Clear]
//	        nullable: true
//	  - name: ui.Button
//	    ancestor: ui.Widget
//	    attrs:
//	      - name: label
//	        kind: string
//	        ops: [Get, Set, Construct]
//
// Declaration order does not matter: ancestors may be declared after
// their descendants.
package yamldef

import (
	"io"

	"github.com/omodel/omodel/pkg/attrdef"
)

// FromYAML builds a model from YAML data
func FromYAML(data []byte) (attrdef.IModel, error) {
	def, err := parseModel(data)
	if err != nil {
		return nil, err
	}
	return def.build()
}

// FromReader builds a model from YAML data read from r
func FromReader(r io.Reader) (attrdef.IModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}
