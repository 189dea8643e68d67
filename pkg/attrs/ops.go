/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// AttrOp is a pending mutation of a single attribute.
//
// Ops are created by the Assign, AssignFrom, Update and UpdateFrom key
// methods, admitted into a batch by Set, consumed once and discarded
type AttrOp struct {
	name     string
	needsGet bool
	resolve  func(iobjects.IObject) (attrdef.IAttribute, error)
	apply    func(iobjects.IObject) error
}

func (k key[V]) resolveOn(obj iobjects.IObject) (attrdef.IAttribute, error) {
	return resolveKey[V](obj, k)
}

func (k key[V]) assign(value V) AttrOp {
	return AttrOp{
		name:    k.name,
		resolve: k.resolveOn,
		apply: func(obj iobjects.IObject) error {
			return obj.PutValue(k.name, value)
		},
	}
}

// The effect executes synchronously in place when the batch reaches
// the op; it is not retried or cancelled
func (k key[V]) assignFrom(produce func() (V, error)) AttrOp {
	return AttrOp{
		name:    k.name,
		resolve: k.resolveOn,
		apply: func(obj iobjects.IObject) error {
			value, err := produce()
			if err != nil {
				return err
			}
			return obj.PutValue(k.name, value)
		},
	}
}

// An absent current value reads as the kind's zero value
func (k key[V]) update(fn func(V) V) AttrOp {
	return AttrOp{
		name:     k.name,
		needsGet: true,
		resolve:  k.resolveOn,
		apply: func(obj iobjects.IObject) error {
			value, err := currentValue[V](obj, k.name)
			if err != nil {
				return err
			}
			return obj.PutValue(k.name, fn(value))
		},
	}
}

func (k key[V]) updateFrom(fn func(V) (V, error)) AttrOp {
	return AttrOp{
		name:     k.name,
		needsGet: true,
		resolve:  k.resolveOn,
		apply: func(obj iobjects.IObject) error {
			value, err := currentValue[V](obj, k.name)
			if err != nil {
				return err
			}
			next, err := fn(value)
			if err != nil {
				return err
			}
			return obj.PutValue(k.name, next)
		},
	}
}

func currentValue[V any](obj iobjects.IObject, name string) (value V, err error) {
	raw, ok := obj.Value(name)
	if !ok {
		return value, nil
	}
	v, ok := raw.(V)
	if !ok {
		return value, attrdef.ErrValueTypeMismatch("attribute «%s» of %v: value has type «%T», but «%T» expected",
			name, obj.Type(), raw, value)
	}
	return v, nil
}
