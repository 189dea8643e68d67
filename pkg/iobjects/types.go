/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package iobjects

import (
	"github.com/google/uuid"

	"github.com/omodel/omodel/pkg/attrdef"
)

// ObjectID is runtime identity of a live object.
//
// Objects are owned by the runtime; the identity only names them
type ObjectID = uuid.UUID

// NullObjectID is identity of no object
var NullObjectID = uuid.Nil

// Live object with named property storage.
//
// The attribute system consumes three collaborator operations from the
// object runtime: read a named property raw value, write a typed value
// into a named property and write the absent sentinel. Everything else
// (identity, lifetime, concurrency) is the runtime's own business
type IObject interface {
	// Returns object type
	Type() attrdef.IObjectType

	// Returns runtime identity of the object
	ID() ObjectID

	// Returns has the named property a value
	HasValue(name string) bool

	// Returns raw value of the named property.
	//
	// ok is false if the underlying value is absent
	Value(name string) (value any, ok bool)

	// Writes a typed value into the named property.
	//
	// Value must correspond to the attribute value kind; numeric
	// widening from float64 and string representations are accepted
	// where the runtime supports conversion
	PutValue(name string, value any) error

	// Writes the absent sentinel into the named property
	ClearValue(name string) error

	// Enumerates names of properties that currently have a value
	ValueNames(cb func(name string))
}

// Object runtime: creates and owns live objects of model types
type IObjects interface {
	// Returns the object model the runtime serves
	Model() attrdef.IModel

	// Creates new object of specified type with an initial property bag.
	//
	// Entries are applied in bag order
	New(t attrdef.QName, init Initial) (IObject, error)
}

// Construction property bag entry
type Entry struct {
	Name  string
	Value any
}

// Initial is an ordered construction property bag.
//
// Produced by gate-checked construction (see pkg/attrs), consumed by
// IObjects.New
type Initial []Entry

// Appends an entry to the bag
func (ii *Initial) Put(name string, value any) {
	*ii = append(*ii, Entry{Name: name, Value: value})
}

// Returns value of named entry. If the name occurs more than once the
// last value wins, as entries apply in order
func (ii Initial) Value(name string) (value any, ok bool) {
	for i := len(ii) - 1; i >= 0; i-- {
		if ii[i].Name == name {
			return ii[i].Value, true
		}
	}
	return nil, false
}

// Returns entries count
func (ii Initial) Len() int { return len(ii) }

// Enumerates entries in bag order
func (ii Initial) Entries(cb func(Entry)) {
	for _, e := range ii {
		cb(e)
	}
}
