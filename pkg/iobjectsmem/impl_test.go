/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package iobjectsmem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

func testModel(t *testing.T) attrdef.IModel {
	b := attrdef.New()

	b.AddType(attrdef.NewQName("ui", "Widget")).
		AddAttr("width", attrdef.Kind_int32, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Construct)).
		AddAttr("opacity", attrdef.Kind_float64, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set)).
		AddAttr("visible", attrdef.Kind_bool, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set)).
		AddAttr("style", attrdef.Kind_QName, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set)).
		AddAttr("icon", attrdef.Kind_bytes, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set)).
		AddNullableAttr("tooltip", attrdef.Kind_string, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Clear))

	b.AddType(attrdef.NewQName("ui", "Button")).
		SetAncestor(attrdef.NewQName("ui", "Widget")).
		AddAttr("label", attrdef.Kind_string, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Construct))

	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	model := testModel(t)
	objects := Provide(model)

	require.Equal(model, objects.Model())

	t.Run("must be ok to create object with initial bag", func(t *testing.T) {
		init := iobjects.Initial{}
		init.Put("width", int32(100))
		init.Put("label", "Ok")

		obj, err := objects.New(attrdef.NewQName("ui", "Button"), init)
		require.NoError(err)
		require.NotEqual(iobjects.NullObjectID, obj.ID())
		require.Equal(attrdef.NewQName("ui", "Button"), obj.Type().QName())

		v, ok := obj.Value("width")
		require.True(ok)
		require.Equal(int32(100), v)

		v, ok = obj.Value("label")
		require.True(ok)
		require.Equal("Ok", v)

		names := []string{}
		obj.ValueNames(func(n string) { names = append(names, n) })
		require.Equal([]string{"label", "width"}, names)
	})

	t.Run("must be error if unknown type", func(t *testing.T) {
		obj, err := objects.New(attrdef.NewQName("ui", "Unknown"), nil)
		require.Nil(obj)
		require.ErrorIs(err, attrdef.ErrTypeNotFoundError)
	})

	t.Run("must be error if unknown attribute in initial bag", func(t *testing.T) {
		init := iobjects.Initial{}
		init.Put("unknown", int32(1))

		obj, err := objects.New(attrdef.NewQName("ui", "Button"), init)
		require.Nil(obj)
		require.ErrorIs(err, attrdef.ErrAttrNotFoundError)
	})
}

func TestObject_PutValue(t *testing.T) {
	require := require.New(t)

	objects := Provide(testModel(t))

	newWidget := func() iobjects.IObject {
		obj, err := objects.New(attrdef.NewQName("ui", "Widget"), nil)
		require.NoError(err)
		return obj
	}

	t.Run("must be ok to put and read back all kinds", func(t *testing.T) {
		obj := newWidget()

		require.NoError(obj.PutValue("width", int32(42)))
		require.NoError(obj.PutValue("opacity", 0.5))
		require.NoError(obj.PutValue("visible", true))
		require.NoError(obj.PutValue("style", attrdef.NewQName("theme", "dark")))
		require.NoError(obj.PutValue("icon", []byte{1, 2, 3}))
		require.NoError(obj.PutValue("tooltip", "press me"))

		v, _ := obj.Value("width")
		require.Equal(int32(42), v)
		v, _ = obj.Value("opacity")
		require.Equal(0.5, v)
		v, _ = obj.Value("visible")
		require.Equal(true, v)
		v, _ = obj.Value("style")
		require.Equal(attrdef.NewQName("theme", "dark"), v)
		v, _ = obj.Value("icon")
		require.Equal([]byte{1, 2, 3}, v)
		v, _ = obj.Value("tooltip")
		require.Equal("press me", v)
	})

	t.Run("must be ok to widen numbers", func(t *testing.T) {
		obj := newWidget()

		require.NoError(obj.PutValue("width", 7))
		require.NoError(obj.PutValue("width", float64(8)))

		v, _ := obj.Value("width")
		require.Equal(int32(8), v)
	})

	t.Run("must be error if value type mismatch", func(t *testing.T) {
		obj := newWidget()

		err := obj.PutValue("width", "wide")
		require.ErrorIs(err, attrdef.ErrValueTypeMismatchError)
		require.ErrorContains(err, "width")

		err = obj.PutValue("visible", 1)
		require.ErrorIs(err, attrdef.ErrValueTypeMismatchError)
	})

	t.Run("must be error if unknown attribute", func(t *testing.T) {
		obj := newWidget()

		err := obj.PutValue("unknown", int32(1))
		require.ErrorIs(err, attrdef.ErrAttrNotFoundError)
	})
}

func TestObject_ClearValue(t *testing.T) {
	require := require.New(t)

	objects := Provide(testModel(t))

	obj, err := objects.New(attrdef.NewQName("ui", "Widget"), nil)
	require.NoError(err)

	require.NoError(obj.PutValue("tooltip", "press me"))
	require.True(obj.HasValue("tooltip"))

	require.NoError(obj.ClearValue("tooltip"))
	require.False(obj.HasValue("tooltip"))

	_, ok := obj.Value("tooltip")
	require.False(ok)

	t.Run("must be error if unknown attribute", func(t *testing.T) {
		require.ErrorIs(obj.ClearValue("unknown"), attrdef.ErrAttrNotFoundError)
	})
}

func TestKindToFieldType(t *testing.T) {
	require := require.New(t)

	for k := attrdef.Kind_null + 1; k < attrdef.Kind_FakeLast; k++ {
		require.NotEqual(KindToFieldType(attrdef.Kind_null), KindToFieldType(k), "kind «%v» must map to a field type", k.TrimString())
	}

	require.Equal(KindToFieldType(attrdef.Kind_FakeLast), KindToFieldType(attrdef.Kind_null))
}
