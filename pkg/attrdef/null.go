/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

// NullType is used for return when IObjectType is not found
var NullType = new(nullType)

type nullType struct{ nullComment }

func (t *nullType) AllAttrs(func(IAttribute))  {}
func (t *nullType) Ancestor() IObjectType      { return nil }
func (t *nullType) Attr(string) IAttribute     { return nil }
func (t *nullType) AttrCount() int             { return 0 }
func (t *nullType) Attrs(func(IAttribute))     {}
func (t *nullType) Chain(cb func(IObjectType)) { cb(t) }
func (t *nullType) FindAttr(string) IAttribute { return nil }
func (t *nullType) Inherits(n QName) bool      { return n == NullQName }
func (t *nullType) QName() QName               { return NullQName }
func (t nullType) String() string              { return "null type" }

type nullComment struct{}

func (c *nullComment) Comment() string        { return "" }
func (c *nullComment) CommentLines() []string { return []string{} }
