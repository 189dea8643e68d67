/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

// Qualified name
//
// <pkg>.<entity>
//
// Ref to qname.go for constants and methods
type QName struct {
	pkg    string
	entity string
}

// Attribute value kind enumeration.
//
// Ref. kind.go for constants and methods
type Kind uint8

// Attribute operation enumeration.
//
// Ref. op.go for constants and methods
type Op uint8

// Set of attribute operations.
//
// Ref. op.go for methods
type Ops uint8

// Object type is a node of the single-rooted capability hierarchy.
//
// Each type directly introduces a set of named attributes and sees,
// through its ancestor chain, the attributes of all its ancestors.
//
// Ref to type.go for implementation
type IObjectType interface {
	IComment

	// Returns qualified name of the type
	QName() QName

	// Returns the direct ancestor of the type.
	//
	// Returns nil for the hierarchy root
	Ancestor() IObjectType

	// Enumerates the ancestor chain, self first, root last
	Chain(func(IObjectType))

	// Returns is the type itself or inherits from the specified type
	Inherits(QName) bool

	// Returns directly introduced attribute by name.
	//
	// Returns nil if type does not introduce the attribute itself
	Attr(name string) IAttribute

	// Returns directly introduced attributes count
	AttrCount() int

	// Enumerates directly introduced attributes in order of addition
	Attrs(func(IAttribute))

	// Enumerates all attributes visible on the type, own first,
	// then inherited, ancestor by ancestor
	AllAttrs(func(IAttribute))

	// Returns attribute visible on the type by name.
	//
	// The attribute may be introduced by the type itself or by any
	// of its ancestors. Returns nil if no type in the chain
	// introduces the attribute
	FindAttr(name string) IAttribute
}

// Attribute descriptor.
//
// Identified by (introducing type, name). Describes the value kind
// exchanged with callers, the set of permitted operations and whether
// an absent value is legal.
//
// Ref to attribute.go for implementation
type IAttribute interface {
	IComment

	// Returns attribute name
	Name() string

	// Returns the type that introduces the attribute
	Owner() IObjectType

	// Returns attribute value kind
	Kind() Kind

	// Returns set of operations the attribute permits
	Ops() Ops

	// Returns is the operation permitted
	Allows(Op) bool

	// Returns is an absent value a legal result for the attribute
	Nullable() bool
}

// Built object model: immutable hierarchy plus attribute descriptors.
//
// Ref to model.go for implementation
type IModel interface {
	// Returns type by name.
	//
	// Returns NullType if type not found
	Type(QName) IObjectType

	// Returns type by name. Returns nil if type not found
	TypeByName(QName) IObjectType

	// Returns types count
	TypeCount() int

	// Enumerates all types in alphabetical QName order
	Types(func(IObjectType))

	// Returns the hierarchy root
	Root() IObjectType

	// Resolves the attribute against the correct introducing type
	// anywhere in the use type ancestor chain.
	//
	// Returns ErrTypeNotFoundError if the use type is unknown and
	// ErrAttrNotFoundError if no type in the chain introduces the
	// attribute
	Resolve(useType QName, attr string) (IAttribute, error)
}

// Object model builder.
//
// Ref to model.go for implementation
type IModelBuilder interface {
	// Adds new object type.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if type with the name is already added
	AddType(QName) ITypeBuilder

	// Validates the model and returns it.
	//
	// Returns joined definition errors if the hierarchy has no single
	// root, if an attribute name is introduced more than once along
	// some ancestor chain, or if a non-nullable attribute permits
	// clear
	Build() (IModel, error)
}

// Object type builder
type ITypeBuilder interface {
	ICommentBuilder

	// Sets the direct ancestor of the type.
	//
	// # Panics:
	//   - if ancestor type is not added yet,
	//   - if inheritance would be cyclic
	SetAncestor(QName) ITypeBuilder

	// Adds new attribute.
	//
	// # Panics:
	//   - if name is empty, invalid or already introduced by the type,
	//   - if kind is not a value kind,
	//   - if operation set is empty
	AddAttr(name string, kind Kind, ops Ops, comment ...string) ITypeBuilder

	// Adds new attribute which tolerates an absent value
	AddNullableAttr(name string, kind Kind, ops Ops, comment ...string) ITypeBuilder

	// Sets comment for attribute introduced by the type.
	//
	// # Panics:
	//   - if attribute is not found
	SetAttrComment(name string, comment ...string) ITypeBuilder
}

// Entities with a comment
type IComment interface {
	// Returns comment
	Comment() string

	// Returns comment line by line
	CommentLines() []string
}

type ICommentBuilder interface {
	// Sets comment
	SetComment(v ...string)
}
