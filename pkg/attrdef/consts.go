/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

// Maximum identifier length
const MaxIdentLen = 255

// Maximum attributes per object type, own and inherited together
const MaxTypeAttrCount = 65536

const (
	// Empty name
	NullName = ""

	// Used as delimiter in qualified names
	QNameQualifierChar = "."
)
