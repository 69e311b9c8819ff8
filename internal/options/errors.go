package options

import (
	"errors"
	"fmt"
)

// InvalidOptionsError reports an option sequence whose elements are not
// mutually comparable. It is raised before any index mapping so the caller
// sees a clear diagnostic instead of a confusing equality failure deep in
// lookup.
type InvalidOptionsError struct {
	// Kinds holds the distinct variant kinds that were mixed.
	Kinds []Kind
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf(
		"options are not mutually comparable: mixed kinds %v. "+
			"Every option must have the same type so values can be compared for equality and order.",
		e.Kinds)
}

// InvalidDefaultError reports a default value that is not part of the
// option set.
type InvalidDefaultError struct {
	Value Value
}

func (e *InvalidDefaultError) Error() string {
	return fmt.Sprintf(
		"the default value '%s' is not part of the options. "+
			"Please make sure that every default value also exists in the options.",
		Format(e.Value))
}

// IsInvalidOptions reports whether err is an InvalidOptionsError.
// Uses errors.As to handle wrapped errors.
func IsInvalidOptions(err error) bool {
	var e *InvalidOptionsError
	return errors.As(err, &e)
}

// IsInvalidDefault reports whether err is an InvalidDefaultError.
func IsInvalidDefault(err error) bool {
	var e *InvalidDefaultError
	return errors.As(err, &e)
}
