/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package iobjectsmem

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"github.com/untillpro/dynobuffers"
	"github.com/untillpro/goutils/logger"

	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// # Implements:
//   - iobjects.IObjects
type objects struct {
	model   attrdef.IModel
	schemes map[attrdef.QName]*dynobuffers.Scheme
}

func newObjects(model attrdef.IModel) *objects {
	o := &objects{
		model:   model,
		schemes: prepareSchemes(model),
	}
	return o
}

func (o *objects) Model() attrdef.IModel { return o.model }

func (o *objects) New(t attrdef.QName, init iobjects.Initial) (iobjects.IObject, error) {
	typ := o.model.TypeByName(t)
	if typ == nil {
		return nil, attrdef.ErrTypeNotFound(t)
	}

	obj := newObject(typ, o.schemes[t])
	var err error
	init.Entries(func(e iobjects.Entry) {
		if err == nil {
			err = obj.PutValue(e.Name, e.Value)
		}
	})
	if err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("object created:", obj.id, "type:", t)
	}

	return obj, nil
}

// # Implements:
//   - iobjects.IObject
type object struct {
	typ attrdef.IObjectType
	id  iobjects.ObjectID
	dyB *dynobuffers.Buffer
}

func newObject(typ attrdef.IObjectType, scheme *dynobuffers.Scheme) *object {
	obj := &object{
		typ: typ,
		id:  uuid.New(),
		dyB: dynobuffers.NewBuffer(scheme),
	}
	return obj
}

func (obj *object) ClearValue(name string) error {
	a := obj.typ.FindAttr(name)
	if a == nil {
		return attrdef.ErrAttrNotFound(obj.typ.QName(), name)
	}
	obj.dyB.Set(name, nil)
	return obj.build()
}

func (obj *object) HasValue(name string) bool {
	return obj.dyB.HasValue(name)
}

func (obj *object) ID() iobjects.ObjectID { return obj.id }

func (obj *object) PutValue(name string, value any) error {
	a := obj.typ.FindAttr(name)
	if a == nil {
		return attrdef.ErrAttrNotFound(obj.typ.QName(), name)
	}

	data, err := dynoValue(value, a.Kind())
	if err != nil {
		return fmt.Errorf("can not put value into «%s.%s»: %w", obj.typ.QName(), name, err)
	}

	obj.dyB.Set(name, data)
	return obj.build()
}

func (obj *object) Type() attrdef.IObjectType { return obj.typ }

func (obj *object) Value(name string) (value any, ok bool) {
	a := obj.typ.FindAttr(name)
	if a == nil {
		return nil, false
	}

	switch a.Kind() {
	case attrdef.Kind_int32:
		if v, ok := obj.dyB.GetInt32(name); ok {
			return v, true
		}
	case attrdef.Kind_int64:
		if v, ok := obj.dyB.GetInt64(name); ok {
			return v, true
		}
	case attrdef.Kind_float32:
		if v, ok := obj.dyB.GetFloat32(name); ok {
			return v, true
		}
	case attrdef.Kind_float64:
		if v, ok := obj.dyB.GetFloat64(name); ok {
			return v, true
		}
	case attrdef.Kind_bytes:
		if b := obj.dyB.GetByteArray(name); b != nil {
			return b.Bytes(), true
		}
	case attrdef.Kind_string:
		if v, ok := obj.dyB.GetString(name); ok {
			return v, true
		}
	case attrdef.Kind_QName:
		if v, ok := obj.dyB.GetString(name); ok {
			if qName, err := attrdef.ParseQName(v); err == nil {
				return qName, true
			}
		}
	case attrdef.Kind_bool:
		if v, ok := obj.dyB.GetBool(name); ok {
			return v, true
		}
	}

	return nil, false
}

func (obj *object) ValueNames(cb func(name string)) {
	obj.typ.AllAttrs(func(a attrdef.IAttribute) {
		if obj.HasValue(a.Name()) {
			cb(a.Name())
		}
	})
}

// Applies pending buffer modifications so subsequent reads see them
func (obj *object) build() error {
	if obj.dyB.IsModified() {
		bytes, err := obj.dyB.ToBytes()
		if err != nil {
			return err
		}
		obj.dyB.Reset(copyBytes(bytes))
	}
	return nil
}

// dynoValue converts specified value to dynobuffer compatible type using
// specified value kind. If value type is not corresponding to kind then
// next conversions are available:
//
//	— float64 and int values can be converted to int32, int64 and float32 kinds
//	— string value can be converted to bytes (base64) and QName kinds
//
// QName values are stored as strings
func dynoValue(value any, kind attrdef.Kind) (any, error) {
	switch kind {
	case attrdef.Kind_int32:
		switch v := value.(type) {
		case int32:
			return v, nil
		case int:
			return int32(v), nil
		case float64:
			return int32(v), nil
		}
	case attrdef.Kind_int64:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case float64:
			return int64(v), nil
		}
	case attrdef.Kind_float32:
		switch v := value.(type) {
		case float32:
			return v, nil
		case float64:
			return float32(v), nil
		}
	case attrdef.Kind_float64:
		switch v := value.(type) {
		case float64:
			return v, nil
		}
	case attrdef.Kind_bytes:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case string:
			bytes, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return nil, err
			}
			return bytes, nil
		}
	case attrdef.Kind_string:
		switch v := value.(type) {
		case string:
			return v, nil
		}
	case attrdef.Kind_QName:
		switch v := value.(type) {
		case attrdef.QName:
			return v.String(), nil
		case string:
			qName, err := attrdef.ParseQName(v)
			if err != nil {
				return nil, err
			}
			return qName.String(), nil
		}
	case attrdef.Kind_bool:
		switch v := value.(type) {
		case bool:
			return v, nil
		}
	}
	return nil, attrdef.ErrValueTypeMismatch("value has type «%T», but «%s» expected", value, kind.TrimString())
}

func copyBytes(src []byte) []byte {
	result := make([]byte, len(src))
	copy(result, src)
	return result
}
