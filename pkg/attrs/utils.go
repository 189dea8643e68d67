/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// Returns attribute value kind the Go type corresponds to.
//
// Returns Kind_null if the type is not a value type
func kindOf[V any]() attrdef.Kind {
	var v V
	switch any(v).(type) {
	case int32:
		return attrdef.Kind_int32
	case int64:
		return attrdef.Kind_int64
	case float32:
		return attrdef.Kind_float32
	case float64:
		return attrdef.Kind_float64
	case []byte:
		return attrdef.Kind_bytes
	case string:
		return attrdef.Kind_string
	case attrdef.QName:
		return attrdef.Kind_QName
	case bool:
		return attrdef.Kind_bool
	}
	return attrdef.Kind_null
}

// Resolves the key against the object type and verifies the key agrees
// with the model descriptor
func resolveKey[V any](obj iobjects.IObject, k Attr[V]) (attrdef.IAttribute, error) {
	a, err := resolveName(obj, k.AttrName())
	if err != nil {
		return nil, err
	}

	if own := k.AttrOwner(); (own != attrdef.NullQName) && (a.Owner().QName() != own) {
		return nil, attrdef.ErrInvalid("attribute «%s» of %v is introduced by %v, but the key declares «%v»",
			k.AttrName(), obj.Type(), a.Owner(), own)
	}
	if kk := kindOf[V](); (kk != attrdef.Kind_null) && (kk != a.Kind()) {
		return nil, attrdef.ErrValueTypeMismatch("attribute «%s» of %v has kind «%s», but the key carries «%s»",
			k.AttrName(), obj.Type(), a.Kind().TrimString(), kk.TrimString())
	}

	return a, nil
}

// Resolves the attribute name against the introducing type anywhere in
// the object type ancestor chain
func resolveName(obj iobjects.IObject, name string) (attrdef.IAttribute, error) {
	t := obj.Type()
	a := t.FindAttr(name)
	if a == nil {
		return nil, attrdef.ErrAttrNotFound(t.QName(), name)
	}
	return a, nil
}

// Returns is the operation permitted by the descriptor and the full
// diagnostic if not.
//
// The diagnostic names the attribute, the defining type with an
// inheritance note when the call site used a descendant, the attempted
// operation and its human label
func gate(useType attrdef.IObjectType, a attrdef.IAttribute, op attrdef.Op) error {
	if a.Allows(op) {
		return nil
	}

	if own := a.Owner(); own.QName() != useType.QName() {
		return attrdef.ErrOperationNotAllowed("%v: can not %s: attribute «%s» (inherited from %v) is not %s",
			useType, op.TrimString(), a.Name(), own, op.Label())
	}
	return attrdef.ErrOperationNotAllowed("%v: can not %s: attribute «%s» is not %s",
		useType, op.TrimString(), a.Name(), op.Label())
}
