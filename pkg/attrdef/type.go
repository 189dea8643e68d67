/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import "fmt"

// # Implements:
//   - IObjectType
//   - ITypeBuilder
type objectType struct {
	comment
	m            *model
	name         QName
	ancestor     *objectType
	attrs        map[string]*attribute
	attrsOrdered []string
}

func newObjectType(m *model, name QName) *objectType {
	t := &objectType{
		m:     m,
		name:  name,
		attrs: make(map[string]*attribute),
	}
	return t
}

func (t *objectType) AddAttr(name string, kind Kind, ops Ops, comment ...string) ITypeBuilder {
	return t.addAttr(name, kind, ops, false, comment...)
}

func (t *objectType) AddNullableAttr(name string, kind Kind, ops Ops, comment ...string) ITypeBuilder {
	return t.addAttr(name, kind, ops, true, comment...)
}

func (t *objectType) AllAttrs(cb func(IAttribute)) {
	t.Chain(func(p IObjectType) {
		p.Attrs(cb)
	})
}

func (t *objectType) Ancestor() IObjectType {
	if t.ancestor == nil {
		return nil
	}
	return t.ancestor
}

func (t *objectType) Attr(name string) IAttribute {
	if a, ok := t.attrs[name]; ok {
		return a
	}
	return nil
}

func (t *objectType) AttrCount() int {
	return len(t.attrsOrdered)
}

func (t *objectType) Attrs(cb func(IAttribute)) {
	for _, n := range t.attrsOrdered {
		cb(t.attrs[n])
	}
}

func (t *objectType) Chain(cb func(IObjectType)) {
	for p := t; p != nil; p = p.ancestor {
		cb(p)
	}
}

func (t *objectType) FindAttr(name string) IAttribute {
	for p := t; p != nil; p = p.ancestor {
		if a, ok := p.attrs[name]; ok {
			return a
		}
	}
	return nil
}

func (t *objectType) Inherits(n QName) bool {
	for p := t; p != nil; p = p.ancestor {
		if p.name == n {
			return true
		}
	}
	return false
}

func (t *objectType) QName() QName { return t.name }

func (t *objectType) SetAncestor(n QName) ITypeBuilder {
	anc, ok := t.m.types[n]
	if !ok {
		panic(fmt.Errorf("%v: unable to inherit from unknown type «%v»: %w", t, n, ErrTypeNotFoundError))
	}
	if anc.Inherits(t.name) {
		panic(fmt.Errorf("%v: inheritance from %v is cyclic: %w", t, anc, ErrDefinitionError))
	}
	t.ancestor = anc
	return t
}

func (t *objectType) SetAttrComment(name string, comment ...string) ITypeBuilder {
	a, ok := t.attrs[name]
	if !ok {
		panic(fmt.Errorf("%v: attribute «%s» not found: %w", t, name, ErrAttrNotFoundError))
	}
	a.SetComment(comment...)
	return t
}

func (t objectType) String() string {
	return fmt.Sprintf("object type «%v»", t.name)
}

// Appends new attribute.
//
// # Panics:
//   - if attribute name is empty, invalid or already introduced by the type,
//   - if kind is not a value kind,
//   - if operation set is empty
func (t *objectType) addAttr(name string, kind Kind, ops Ops, nullable bool, comment ...string) ITypeBuilder {
	if name == NullName {
		panic(fmt.Errorf("%v: empty attribute name: %w", t, ErrMissedError))
	}
	if ok, err := ValidAttrName(name); !ok {
		panic(fmt.Errorf("%v: attribute name «%s» is invalid: %w", t, name, err))
	}
	if t.Attr(name) != nil {
		panic(fmt.Errorf("%v: attribute «%s» is already introduced: %w", t, name, ErrAlreadyExistsError))
	}
	if len(t.attrs) >= MaxTypeAttrCount {
		panic(fmt.Errorf("%v: maximum attribute count (%d) exceeds: %w", t, MaxTypeAttrCount, ErrOutOfBoundsError))
	}
	if !kind.IsValueKind() {
		panic(fmt.Errorf("%v: attribute «%s» has invalid value kind «%v»: %w", t, name, kind.TrimString(), ErrInvalidError))
	}
	if ops == NullOps {
		panic(fmt.Errorf("%v: attribute «%s» permits no operations: %w", t, name, ErrMissedError))
	}

	t.attrs[name] = newAttribute(t, name, kind, ops, nullable, comment...)
	t.attrsOrdered = append(t.attrsOrdered, name)
	return t
}
