/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=Kind -output=kind_string.go

const (
	// null - no-value kind. Returned when the requested kind does not exist
	Kind_null Kind = iota

	Kind_int32
	Kind_int64
	Kind_float32
	Kind_float64
	Kind_bytes
	Kind_string
	Kind_QName
	Kind_bool

	Kind_FakeLast
)

// Returns is the kind usable as an attribute value kind
func (k Kind) IsValueKind() bool {
	return (k > Kind_null) && (k < Kind_FakeLast)
}

func (k Kind) MarshalText() ([]byte, error) {
	var s string
	if k < Kind_FakeLast {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a Kind in human-readable form, without "Kind_" prefix,
// suitable for debugging or error messages
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}
