/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=Op -output=op_string.go

const (
	Op_Get Op = iota
	Op_Set
	Op_Construct
	Op_Clear

	Op_Count
)

// No operations
const NullOps Ops = 0

func (op Op) MarshalText() ([]byte, error) {
	var s string
	if op < Op_Count {
		s = op.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(op), base)
	}
	return []byte(s), nil
}

// Renders an Op in human-readable form, without "Op_" prefix,
// suitable for debugging or error messages
func (op Op) TrimString() string {
	const pref = "Op_"
	return strings.TrimPrefix(op.String(), pref)
}

// Returns human label of the attribute capability the operation
// requires, suitable for diagnostics
func (op Op) Label() string {
	switch op {
	case Op_Get:
		return "gettable"
	case Op_Set:
		return "settable"
	case Op_Construct:
		return "constructible"
	case Op_Clear:
		return "nullable"
	}
	return op.TrimString()
}

// Returns set of operations from variadic arguments.
//
// # Panics:
//   - if any operation is out of bounds
func OpsFrom(ops ...Op) Ops {
	oo := NullOps
	for _, op := range ops {
		if op >= Op_Count {
			panic(ErrOutOfBounds("operation «%v»", op))
		}
		oo |= 1 << op
	}
	return oo
}

// Returns is the operation in the set
func (oo Ops) Contains(op Op) bool {
	return oo&(1<<op) != 0
}

// Returns is all specified operations in the set
func (oo Ops) ContainsAll(ops ...Op) bool {
	for _, op := range ops {
		if !oo.Contains(op) {
			return false
		}
	}
	return true
}

// Enumerates operations in the set, in Op value order
func (oo Ops) Enum(cb func(Op)) {
	for op := Op_Get; op < Op_Count; op++ {
		if oo.Contains(op) {
			cb(op)
		}
	}
}

// Returns operations set in human-readable form: `[Get, Set]`
func (oo Ops) String() string {
	s := make([]string, 0, Op_Count)
	oo.Enum(func(op Op) {
		s = append(s, op.TrimString())
	})
	return "[" + strings.Join(s, ", ") + "]"
}
