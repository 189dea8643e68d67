/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// Dynamic, string-keyed access path for attribute names known at run
// time only. Resolution and gating happen at call time; illegal
// operations surface as runtime errors instead of compile errors.

// DynGet returns the raw attribute value of the object.
//
// ok is false if the underlying value is absent, which for a nullable
// attribute is a legal result, not an error
func DynGet(obj iobjects.IObject, name string) (value any, ok bool, err error) {
	a, err := resolveName(obj, name)
	if err != nil {
		return nil, false, err
	}
	if err := gate(obj.Type(), a, attrdef.Op_Get); err != nil {
		return nil, false, err
	}
	value, ok = obj.Value(name)
	return value, ok, nil
}

// DynSet writes the value into the attribute. Value kind checking is
// the runtime's business and surfaces as ErrValueTypeMismatchError
func DynSet(obj iobjects.IObject, name string, value any) error {
	a, err := resolveName(obj, name)
	if err != nil {
		return err
	}
	if err := gate(obj.Type(), a, attrdef.Op_Set); err != nil {
		return err
	}
	return obj.PutValue(name, value)
}

// DynClear writes the absent sentinel into the attribute
func DynClear(obj iobjects.IObject, name string) error {
	a, err := resolveName(obj, name)
	if err != nil {
		return err
	}
	if err := gate(obj.Type(), a, attrdef.Op_Clear); err != nil {
		return err
	}
	return obj.ClearValue(name)
}
