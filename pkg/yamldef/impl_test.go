/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package yamldef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omodel/omodel/pkg/attrdef"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	doc := `
types:
  - name: ui.Button
    ancestor: ui.Widget
    attrs:
      - name: label
        kind: string
        ops: [Get, Set, Construct]
  - name: ui.Widget
    comment: base of the hierarchy
    attrs:
      - name: width
        kind: int32
        ops: [Get, Set, Construct]
        comment: logical pixels
      - name: tooltip
        kind: string
        ops: [Get, Set, Clear]
        nullable: true
`

	model, err := FromYAML([]byte(doc))
	require.NoError(err)

	widget := model.Type(attrdef.NewQName("ui", "Widget"))
	require.Equal("base of the hierarchy", widget.Comment())
	require.Equal(widget, model.Root())

	button := model.Type(attrdef.NewQName("ui", "Button"))
	require.Equal(widget, button.Ancestor())

	width := widget.Attr("width")
	require.NotNil(width)
	require.Equal(attrdef.Kind_int32, width.Kind())
	require.True(width.Allows(attrdef.Op_Construct))
	require.False(width.Nullable())
	require.Equal("logical pixels", width.Comment())

	tooltip := widget.Attr("tooltip")
	require.NotNil(tooltip)
	require.True(tooltip.Nullable())
	require.True(tooltip.Allows(attrdef.Op_Clear))

	// attributes resolve through the chain regardless of declaration order
	a, err := model.Resolve(attrdef.NewQName("ui", "Button"), "width")
	require.NoError(err)
	require.Equal(width, a)
}

func TestFromReader(t *testing.T) {
	require := require.New(t)

	doc := `
types:
  - name: app.Root
    attrs:
      - name: title
        kind: string
        ops: [get, set]
`

	model, err := FromReader(strings.NewReader(doc))
	require.NoError(err)
	require.Equal(1, model.TypeCount())

	a, err := model.Resolve(attrdef.NewQName("app", "Root"), "title")
	require.NoError(err)
	require.True(a.Allows(attrdef.Op_Get))
	require.True(a.Allows(attrdef.Op_Set))
}

func TestErrors(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name string
		doc  string
		want error
		text string
	}{
		{"must be error if document is not YAML",
			"types: [",
			nil, "malformed model document"},
		{"must be error if document declares no types",
			"",
			attrdef.ErrDefinitionError, "no types"},
		{"must be error if document has unknown fields",
			"kinds: []",
			nil, "malformed model document"},
		{"must be error if type name is not qualified",
			"types: [{name: Widget}]",
			attrdef.ErrDefinitionError, "Widget"},
		{"must be error if type is declared twice",
			"types: [{name: ui.W}, {name: ui.W}]",
			attrdef.ErrDefinitionError, "declared twice"},
		{"must be error if ancestor is not declared",
			"types: [{name: ui.W, ancestor: ui.Base}]",
			attrdef.ErrDefinitionError, "not declared"},
		{"must be error if inheritance is cyclic",
			"types: [{name: ui.A, ancestor: ui.B}, {name: ui.B, ancestor: ui.A}]",
			attrdef.ErrDefinitionError, "cyclic"},
		{"must be error if attribute name is not valid",
			"types: [{name: ui.W, attrs: [{name: 1st, kind: int32, ops: [Get]}]}]",
			attrdef.ErrDefinitionError, "not valid"},
		{"must be error if attribute is declared twice",
			"types: [{name: ui.W, attrs: [{name: a, kind: int32, ops: [Get]}, {name: a, kind: int64, ops: [Get]}]}]",
			attrdef.ErrDefinitionError, "declared twice"},
		{"must be error if value kind is not known",
			"types: [{name: ui.W, attrs: [{name: a, kind: decimal, ops: [Get]}]}]",
			attrdef.ErrDefinitionError, "decimal"},
		{"must be error if operation is not known",
			"types: [{name: ui.W, attrs: [{name: a, kind: int32, ops: [Freeze]}]}]",
			attrdef.ErrDefinitionError, "Freeze"},
		{"must be error if attribute declares no operations",
			"types: [{name: ui.W, attrs: [{name: a, kind: int32}]}]",
			attrdef.ErrDefinitionError, "no operations"},
		{"must be error if hierarchy has two roots",
			"types: [{name: ui.A}, {name: ui.B}]",
			attrdef.ErrDefinitionError, "root"},
		{"must be error if non-nullable attribute permits clear",
			"types: [{name: ui.W, attrs: [{name: a, kind: int32, ops: [Get, Clear]}]}]",
			attrdef.ErrDefinitionError, "nullable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromYAML([]byte(tt.doc))
			require.Nil(m)
			require.Error(err)
			if tt.want != nil {
				require.ErrorIs(err, tt.want)
			}
			require.ErrorContains(err, tt.text)
		})
	}
}

func TestErrors_Joined(t *testing.T) {
	require := require.New(t)

	doc := `
types:
  - name: ui.W
    attrs:
      - name: a
        kind: decimal
        ops: [Get]
      - name: b
        kind: int32
        ops: [Freeze]
`

	_, err := FromYAML([]byte(doc))
	require.ErrorIs(err, attrdef.ErrDefinitionError)
	require.ErrorContains(err, "decimal")
	require.ErrorContains(err, "Freeze")
}

func TestParseKind(t *testing.T) {
	require := require.New(t)

	k, err := parseKind("QName")
	require.NoError(err)
	require.Equal(attrdef.Kind_QName, k)

	k, err = parseKind("qname")
	require.NoError(err)
	require.Equal(attrdef.Kind_QName, k)

	_, err = parseKind("null")
	require.ErrorIs(err, attrdef.ErrInvalidError)
}
