/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// ConsEntry is a pending construction-time assignment, created by the
// With method of constructible keys or by DynWith, consumed by
// Construct
type ConsEntry struct {
	name  string
	owner attrdef.QName
	kind  attrdef.Kind
	value any
}

func (k key[V]) with(value V) ConsEntry {
	return ConsEntry{
		name:  k.name,
		owner: k.owner,
		kind:  kindOf[V](),
		value: value,
	}
}

// DynWith creates a construction entry from an attribute name known at
// run time only. The Construct gate is the only check it gets
func DynWith(name string, value any) ConsEntry {
	return ConsEntry{
		name:  name,
		value: value,
	}
}

// Construct produces a property bag for creation of an object of the
// specified type. Each entry is resolved and checked to permit the
// Construct operation. The bag preserves entry order.
//
// Construct does not create the object: hand the bag to
// iobjects.IObjects.New
func Construct(model attrdef.IModel, t attrdef.QName, entries ...ConsEntry) (iobjects.Initial, error) {
	typ := model.TypeByName(t)
	if typ == nil {
		return nil, attrdef.ErrTypeNotFound(t)
	}

	init := iobjects.Initial{}
	for _, e := range entries {
		a := typ.FindAttr(e.name)
		if a == nil {
			return nil, attrdef.ErrAttrNotFound(t, e.name)
		}
		if (e.owner != attrdef.NullQName) && (a.Owner().QName() != e.owner) {
			return nil, attrdef.ErrInvalid("attribute «%s» of %v is introduced by %v, but the key declares «%v»",
				e.name, typ, a.Owner(), e.owner)
		}
		if (e.kind != attrdef.Kind_null) && (e.kind != a.Kind()) {
			return nil, attrdef.ErrValueTypeMismatch("attribute «%s» of %v has kind «%s», but the key carries «%s»",
				e.name, typ, a.Kind().TrimString(), e.kind.TrimString())
		}
		if err := gate(typ, a, attrdef.Op_Construct); err != nil {
			return nil, err
		}
		init.Put(e.name, e.value)
	}

	return init, nil
}
