/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package attrdef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

// Definition errors are fatal at model build time and never
// recoverable at run time
var ErrDefinitionError = errors.New("invalid model definition")

func ErrDefinition(msg string, args ...any) error {
	return EnrichError(ErrDefinitionError, msg, args...)
}

var ErrTypeNotFoundError = errors.New("type not found")

func ErrTypeNotFound(t QName) error {
	return EnrichError(ErrTypeNotFoundError, "object type «%v»", t)
}

var ErrAttrNotFoundError = errors.New("attribute not found")

func ErrAttrNotFound(t QName, a string) error {
	return EnrichError(ErrAttrNotFoundError, "attribute «%s» is not known on %v or any of its ancestors", a, t)
}

var ErrOperationNotAllowedError = errors.New("operation not allowed")

func ErrOperationNotAllowed(msg string, args ...any) error {
	return EnrichError(ErrOperationNotAllowedError, msg, args...)
}

var ErrValueTypeMismatchError = errors.New("value type mismatch")

func ErrValueTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrValueTypeMismatchError, msg, args...)
}
