/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// Attr identifies an attribute at the call site. The value type
// exchanged with the caller is carried by the type parameter.
//
// Keys are values, intended to be declared once per attribute by
// generated code or by hand:
//
//	var Width = attrs.NewRW[int32](ui.WidgetName, "width")
//
// Each key type exposes as methods exactly the operations it permits,
// so an operation a key does not support is rejected by the compiler,
// not at run time. The model re-checks resolve and gate on every call
// anyway: keys can drift from a model loaded at run time
type Attr[V any] interface {
	// Returns attribute name
	AttrName() string

	// Returns qualified name of the type that introduces the attribute
	AttrOwner() attrdef.QName
}

type key[V any] struct {
	owner attrdef.QName
	name  string
}

func (k key[V]) AttrName() string         { return k.name }
func (k key[V]) AttrOwner() attrdef.QName { return k.owner }

// RO is a read-only attribute key: Get
type RO[V any] struct{ key[V] }

func NewRO[V any](owner attrdef.QName, name string) RO[V] {
	return RO[V]{key[V]{owner: owner, name: name}}
}

// Get returns the attribute value of the object
func (k RO[V]) Get(obj iobjects.IObject) (V, error) { return k.get(obj) }

// RW is a read-write attribute key: Get, Set operations and Construct
type RW[V any] struct{ key[V] }

func NewRW[V any](owner attrdef.QName, name string) RW[V] {
	return RW[V]{key[V]{owner: owner, name: name}}
}

// Get returns the attribute value of the object
func (k RW[V]) Get(obj iobjects.IObject) (V, error) { return k.get(obj) }

// Assign makes an operation which writes the literal value
func (k RW[V]) Assign(value V) AttrOp { return k.assign(value) }

// AssignFrom makes an operation which runs the effect to obtain the
// value, then writes it
func (k RW[V]) AssignFrom(produce func() (V, error)) AttrOp { return k.assignFrom(produce) }

// Update makes an operation which reads the current value, applies the
// pure function and writes the result
func (k RW[V]) Update(fn func(V) V) AttrOp { return k.update(fn) }

// UpdateFrom makes an operation which reads the current value, runs
// the effect with it and writes the obtained value
func (k RW[V]) UpdateFrom(fn func(V) (V, error)) AttrOp { return k.updateFrom(fn) }

// With creates a construction entry with the value
func (k RW[V]) With(value V) ConsEntry { return k.with(value) }

// WO is a write-only attribute key: Set operations and Construct
type WO[V any] struct{ key[V] }

func NewWO[V any](owner attrdef.QName, name string) WO[V] {
	return WO[V]{key[V]{owner: owner, name: name}}
}

// Assign makes an operation which writes the literal value
func (k WO[V]) Assign(value V) AttrOp { return k.assign(value) }

// AssignFrom makes an operation which runs the effect to obtain the
// value, then writes it
func (k WO[V]) AssignFrom(produce func() (V, error)) AttrOp { return k.assignFrom(produce) }

// With creates a construction entry with the value
func (k WO[V]) With(value V) ConsEntry { return k.with(value) }

// CO is a construction-only attribute key: settable at object creation
// time only
type CO[V any] struct{ key[V] }

func NewCO[V any](owner attrdef.QName, name string) CO[V] {
	return CO[V]{key[V]{owner: owner, name: name}}
}

// With creates a construction entry with the value
func (k CO[V]) With(value V) ConsEntry { return k.with(value) }

// NullableRO is a read-only nullable attribute key: Get and GetOpt
type NullableRO[V any] struct{ key[V] }

func NewNullableRO[V any](owner attrdef.QName, name string) NullableRO[V] {
	return NullableRO[V]{key[V]{owner: owner, name: name}}
}

// Get returns the attribute value of the object. An absent value reads
// as the kind's zero value, indistinguishable from a stored zero:
// prefer GetOpt on nullable attributes
func (k NullableRO[V]) Get(obj iobjects.IObject) (V, error) { return k.get(obj) }

// GetOpt returns the attribute value of the object and whether the
// underlying value is present
func (k NullableRO[V]) GetOpt(obj iobjects.IObject) (V, bool, error) { return k.getOpt(obj) }

// NullableRW is a read-write nullable attribute key: Get, GetOpt, Set
// operations, Construct and Clear
type NullableRW[V any] struct{ key[V] }

func NewNullableRW[V any](owner attrdef.QName, name string) NullableRW[V] {
	return NullableRW[V]{key[V]{owner: owner, name: name}}
}

// Get returns the attribute value of the object. An absent value reads
// as the kind's zero value, indistinguishable from a stored zero:
// prefer GetOpt on nullable attributes
func (k NullableRW[V]) Get(obj iobjects.IObject) (V, error) { return k.get(obj) }

// GetOpt returns the attribute value of the object and whether the
// underlying value is present
func (k NullableRW[V]) GetOpt(obj iobjects.IObject) (V, bool, error) { return k.getOpt(obj) }

// Assign makes an operation which writes the literal value
func (k NullableRW[V]) Assign(value V) AttrOp { return k.assign(value) }

// AssignFrom makes an operation which runs the effect to obtain the
// value, then writes it
func (k NullableRW[V]) AssignFrom(produce func() (V, error)) AttrOp { return k.assignFrom(produce) }

// Update makes an operation which reads the current value, applies the
// pure function and writes the result
func (k NullableRW[V]) Update(fn func(V) V) AttrOp { return k.update(fn) }

// UpdateFrom makes an operation which reads the current value, runs
// the effect with it and writes the obtained value
func (k NullableRW[V]) UpdateFrom(fn func(V) (V, error)) AttrOp { return k.updateFrom(fn) }

// Clear writes the absent sentinel into the attribute
func (k NullableRW[V]) Clear(obj iobjects.IObject) error { return k.clearValue(obj) }

// With creates a construction entry with the value
func (k NullableRW[V]) With(value V) ConsEntry { return k.with(value) }
