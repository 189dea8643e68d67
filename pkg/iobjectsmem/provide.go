/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package iobjectsmem

import (
	"github.com/omodel/omodel/pkg/attrdef"
	"github.com/omodel/omodel/pkg/iobjects"
)

// Provide creates an in-memory object runtime over the specified model.
//
// Objects live on the heap and are not goroutine-safe: callers
// coordinate concurrent access to the same object themselves
func Provide(model attrdef.IModel) iobjects.IObjects {
	return newObjects(model)
}
