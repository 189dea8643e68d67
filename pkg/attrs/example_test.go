/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrs_test

import (
	"fmt"

	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/attrs"
	"github.com/omodel/omodel/pkg/iobjectsmem"
)

func Example() {
	var (
		widget = attrdef.NewQName("ui", "Widget")
		button = attrdef.NewQName("ui", "Button")

		width   = attrs.NewRW[int32](widget, "width")
		tooltip = attrs.NewNullableRW[string](widget, "tooltip")
		label   = attrs.NewRW[string](button, "label")
	)

	// describe the model
	b := attrdef.New()
	b.AddType(widget).
		AddAttr("width", attrdef.Kind_int32, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Construct)).
		AddNullableAttr("tooltip", attrdef.Kind_string, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Clear))
	b.AddType(button).
		SetAncestor(widget).
		AddAttr("label", attrdef.Kind_string, attrdef.OpsFrom(attrdef.Op_Get, attrdef.Op_Set, attrdef.Op_Construct))

	model, err := b.Build()
	if err != nil {
		panic(err)
	}

	// construct an object and play with its attributes
	objects := iobjectsmem.Provide(model)

	init, err := attrs.Construct(model, button,
		label.With("Ok"),
		width.With(80),
	)
	if err != nil {
		panic(err)
	}

	btn, err := objects.New(button, init)
	if err != nil {
		panic(err)
	}

	if err := attrs.Set(btn,
		tooltip.Assign("press me"),
		width.Update(func(w int32) int32 { return w + 20 }),
	); err != nil {
		panic(err)
	}

	if v, err := label.Get(btn); err == nil {
		fmt.Println("label:", v)
	}
	if v, err := width.Get(btn); err == nil {
		fmt.Println("width:", v)
	}
	if v, ok, err := tooltip.GetOpt(btn); err == nil {
		fmt.Println("tooltip:", v, ok)
	}

	if err := tooltip.Clear(btn); err != nil {
		panic(err)
	}
	if _, ok, err := tooltip.GetOpt(btn); err == nil {
		fmt.Println("tooltip after clear present:", ok)
	}

	// Output:
	// label: Ok
	// width: 100
	// tooltip: press me true
	// tooltip after clear present: false
}
