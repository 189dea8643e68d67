/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import "fmt"

// Creates and returns new object model builder
func New() IModelBuilder {
	return newModel()
}

// # Implements:
//   - IModel
//   - IModelBuilder
type model struct {
	types map[QName]*objectType
	root  *objectType
}

func newModel() *model {
	m := model{
		types: make(map[QName]*objectType),
	}
	return &m
}

func (m *model) AddType(name QName) ITypeBuilder {
	if name == NullQName {
		panic(fmt.Errorf("object type name cannot be empty: %w", ErrMissedError))
	}
	if ok, err := ValidQName(name); !ok {
		panic(fmt.Errorf("invalid object type name «%v»: %w", name, err))
	}
	if m.TypeByName(name) != nil {
		panic(fmt.Errorf("object type name «%v» already used: %w", name, ErrAlreadyExistsError))
	}
	t := newObjectType(m, name)
	m.types[name] = t
	return t
}

func (m *model) Build() (IModel, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) Resolve(useType QName, attr string) (IAttribute, error) {
	t := m.TypeByName(useType)
	if t == nil {
		return nil, ErrTypeNotFound(useType)
	}
	a := t.FindAttr(attr)
	if a == nil {
		return nil, ErrAttrNotFound(useType, attr)
	}
	return a, nil
}

func (m *model) Root() IObjectType {
	if m.root == nil {
		return nil
	}
	return m.root
}

func (m *model) Type(name QName) IObjectType {
	if t := m.TypeByName(name); t != nil {
		return t
	}
	return NullType
}

func (m *model) TypeByName(name QName) IObjectType {
	if t, ok := m.types[name]; ok {
		return t
	}
	return nil
}

func (m *model) TypeCount() int {
	return len(m.types)
}

func (m *model) Types(cb func(IObjectType)) {
	for _, n := range QNamesFromMap(m.types) {
		cb(m.types[n])
	}
}
