/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Ops(t *testing.T) {
	require := require.New(t)

	oo := OpsFrom(Op_Get, Op_Set)

	require.True(oo.Contains(Op_Get))
	require.True(oo.Contains(Op_Set))
	require.False(oo.Contains(Op_Construct))
	require.False(oo.Contains(Op_Clear))

	require.True(oo.ContainsAll(Op_Get, Op_Set))
	require.False(oo.ContainsAll(Op_Get, Op_Clear))

	require.Equal("[Get, Set]", oo.String())

	cnt := 0
	oo.Enum(func(Op) { cnt++ })
	require.Equal(2, cnt)

	t.Run("empty set", func(t *testing.T) {
		require.Equal(NullOps, OpsFrom())
		require.Equal("[]", NullOps.String())
	})

	t.Run("must be panic if out of bounds operation", func(t *testing.T) {
		require.Panics(func() { _ = OpsFrom(Op_Count) })
	})
}

func TestOp_Label(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op_Get, "gettable"},
		{Op_Set, "settable"},
		{Op_Construct, "constructible"},
		{Op_Clear, "nullable"},
	}
	for _, tt := range tests {
		t.Run(tt.op.TrimString(), func(t *testing.T) {
			if got := tt.op.Label(); got != tt.want {
				t.Errorf("Op.Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOp_TrimString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op_Get, "Get"},
		{Op_Clear, "Clear"},
		{Op_Count, "Count"},
		{Op(100), "Op(100)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.TrimString(); got != tt.want {
				t.Errorf("Op.TrimString() = %v, want %v", got, tt.want)
			}
		})
	}
}
