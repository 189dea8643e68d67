/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import "errors"

// Validates the model as a whole.
//
// # Validation:
//   - hierarchy must have exactly one root,
//   - attribute name must be introduced at most once along any ancestor chain,
//   - attribute which permits clear must be nullable
func (m *model) validate() (err error) {
	err = m.validateRoot()

	m.Types(func(t IObjectType) {
		err = errors.Join(err, validateTypeAttrs(t))
	})

	return err
}

// Validates the hierarchy is single-rooted and assigns the root
func (m *model) validateRoot() error {
	if len(m.types) == 0 {
		return ErrDefinition("model has no object types")
	}

	roots := QNames{}
	for n, t := range m.types {
		if t.ancestor == nil {
			roots.Add(n)
		}
	}

	switch len(roots) {
	case 1:
		m.root = m.types[roots[0]]
		return nil
	case 0:
		// unreachable while SetAncestor rejects cycles, here to keep Build honest
		return ErrDefinition("hierarchy has no root")
	}
	return ErrDefinition("hierarchy must have exactly one root, but %d found: %v", len(roots), roots)
}

// Validates attributes of specified type.
//
// # Validation:
//   - every attribute introduced by the type must not be introduced by any ancestor too,
//   - every attribute which permits clear must be nullable
func validateTypeAttrs(t IObjectType) (err error) {
	anc := t.Ancestor()

	t.Attrs(func(a IAttribute) {
		if anc != nil {
			if dup := anc.FindAttr(a.Name()); dup != nil {
				err = errors.Join(err,
					ErrDefinition("%v: attribute «%s» is introduced by both %v and %v", t, a.Name(), t, dup.Owner()))
			}
		}
		if a.Allows(Op_Clear) && !a.Nullable() {
			err = errors.Join(err,
				ErrDefinition("%v: attribute «%s» permits clear but is not nullable", t, a.Name()))
		}
	})

	return err
}
