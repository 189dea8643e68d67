/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import "fmt"

// # Implements:
//   - IAttribute
type attribute struct {
	comment
	name     string
	owner    *objectType
	kind     Kind
	ops      Ops
	nullable bool
}

func newAttribute(owner *objectType, name string, kind Kind, ops Ops, nullable bool, comments ...string) *attribute {
	a := &attribute{
		comment:  makeComment(comments...),
		name:     name,
		owner:    owner,
		kind:     kind,
		ops:      ops,
		nullable: nullable,
	}
	return a
}

func (a *attribute) Allows(op Op) bool { return a.ops.Contains(op) }

func (a *attribute) Kind() Kind { return a.kind }

func (a *attribute) Name() string { return a.name }

func (a *attribute) Nullable() bool { return a.nullable }

func (a *attribute) Ops() Ops { return a.ops }

func (a *attribute) Owner() IObjectType { return a.owner }

func (a attribute) String() string {
	return fmt.Sprintf("%s-attribute «%s» of %v", a.kind.TrimString(), a.name, a.owner)
}
