/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// Set applies the operations to the object, in the given order.
//
// Each operation is independently resolved and gate-checked before its
// write. Partial failure policy: Set stops at the first failing
// operation; operations already applied are kept, there is no rollback
func Set(obj iobjects.IObject, ops ...AttrOp) error {
	for i, op := range ops {
		attr, err := op.resolve(obj)
		if err != nil {
			return fmt.Errorf("op %d «%s»: %w", i, op.name, err)
		}
		if err := gate(obj.Type(), attr, attrdef.Op_Set); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		if op.needsGet {
			if err := gate(obj.Type(), attr, attrdef.Op_Get); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
		}
		if err := op.apply(obj); err != nil {
			return fmt.Errorf("op %d «%s»: %w", i, op.name, err)
		}
	}

	if logger.IsVerbose() {
		logger.Verbose("applied", len(ops), "attribute ops to object:", obj.ID())
	}

	return nil
}

// get serves the Get method of readable keys.
//
// An absent underlying value reads as the kind's zero value; nullable
// keys offer GetOpt to distinguish absence
func (k key[V]) get(obj iobjects.IObject) (value V, err error) {
	attr, err := resolveKey[V](obj, k)
	if err != nil {
		return value, err
	}
	if err := gate(obj.Type(), attr, attrdef.Op_Get); err != nil {
		return value, err
	}
	return currentValue[V](obj, k.name)
}

// getOpt serves the GetOpt method of nullable keys.
//
// Absence of a nullable attribute value is a first-class result, not
// an error
func (k key[V]) getOpt(obj iobjects.IObject) (value V, ok bool, err error) {
	attr, err := resolveKey[V](obj, k)
	if err != nil {
		return value, false, err
	}
	if err := gate(obj.Type(), attr, attrdef.Op_Get); err != nil {
		return value, false, err
	}

	raw, ok := obj.Value(k.name)
	if !ok {
		return value, false, nil
	}
	v, ok := raw.(V)
	if !ok {
		return value, false, attrdef.ErrValueTypeMismatch("attribute «%s» of %v: value has type «%T», but «%T» expected",
			k.name, obj.Type(), raw, value)
	}
	return v, true, nil
}

// clearValue serves the Clear method of nullable settable keys.
//
// The gate is re-checked against the model at run time
func (k key[V]) clearValue(obj iobjects.IObject) error {
	attr, err := resolveKey[V](obj, k)
	if err != nil {
		return err
	}
	if err := gate(obj.Type(), attr, attrdef.Op_Clear); err != nil {
		return err
	}
	return obj.ClearValue(k.name)
}
