/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package iobjectsmem

import (
	"github.com/untillpro/dynobuffers"

	"github.com/omodel/omodel/pkg/attrdef"
)

var kindToDynoFieldType = map[attrdef.Kind]dynobuffers.FieldType{
	attrdef.Kind_null:    dynobuffers.FieldTypeUnspecified,
	attrdef.Kind_int32:   dynobuffers.FieldTypeInt32,
	attrdef.Kind_int64:   dynobuffers.FieldTypeInt64,
	attrdef.Kind_float32: dynobuffers.FieldTypeFloat32,
	attrdef.Kind_float64: dynobuffers.FieldTypeFloat64,
	attrdef.Kind_bytes:   dynobuffers.FieldTypeByte,
	attrdef.Kind_string:  dynobuffers.FieldTypeString,
	attrdef.Kind_QName:   dynobuffers.FieldTypeString, // stored as «pkg.entity»
	attrdef.Kind_bool:    dynobuffers.FieldTypeBool,
}

// Converts attribute value kind to dynobuffers field type
func KindToFieldType(k attrdef.Kind) dynobuffers.FieldType {
	if ft, ok := kindToDynoFieldType[k]; ok {
		return ft
	}
	return dynobuffers.FieldTypeUnspecified
}

// Prepares dynobuffers schemes for all model types.
//
// A type scheme includes inherited attributes: the property storage of
// an object is flat, the hierarchy lives in the model only
func prepareSchemes(m attrdef.IModel) map[attrdef.QName]*dynobuffers.Scheme {
	ss := make(map[attrdef.QName]*dynobuffers.Scheme, m.TypeCount())
	m.Types(func(t attrdef.IObjectType) {
		ss[t.QName()] = newTypeScheme(t)
	})
	return ss
}

// Creates new dynobuffers scheme for the type, inherited attributes included
func newTypeScheme(t attrdef.IObjectType) *dynobuffers.Scheme {
	db := dynobuffers.NewScheme()

	db.Name = t.QName().String()
	t.AllAttrs(
		func(a attrdef.IAttribute) {
			fieldType := KindToFieldType(a.Kind())
			if fieldType == dynobuffers.FieldTypeByte {
				db.AddArray(a.Name(), fieldType, false)
			} else {
				db.AddField(a.Name(), fieldType, false)
			}
		})

	return db
}
