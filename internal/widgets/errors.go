package widgets

import (
	"errors"
	"fmt"
)

// SelectionLimitError reports a selection cardinality above the widget's
// configured maximum, detected after registration and coercion.
type SelectionLimitError struct {
	Selected int
	Max      int
}

func (e *SelectionLimitError) Error() string {
	return fmt.Sprintf(
		"Multiselect has %d %s selected but `max_selections`\n"+
			"is set to %d. This happened because you either gave too many options to\n"+
			"`default` or you wrote to the widget's backing key through session state.\n"+
			"Note that the latter can happen before the failing line.\n"+
			"Please select at most %d %s.",
		e.Selected, optionNoun(e.Selected), e.Max, e.Max, optionNoun(e.Max))
}

// optionNoun picks the singular or plural noun for a count. The error
// wording is covered by golden-message tests; keep it stable.
func optionNoun(count int) string {
	if count == 1 {
		return "option"
	}
	return "options"
}

// InvalidFeedbackOptionError reports an unrecognized feedback option name.
type InvalidFeedbackOptionError struct {
	Got string
}

func (e *InvalidFeedbackOptionError) Error() string {
	return fmt.Sprintf(
		"the feedback options argument must be one of ['thumbs', 'faces', 'stars']. "+
			"The argument passed was '%s'.", e.Got)
}

// IsSelectionLimit reports whether err is a SelectionLimitError.
// Uses errors.As to handle wrapped errors.
func IsSelectionLimit(err error) bool {
	var e *SelectionLimitError
	return errors.As(err, &e)
}

// IsInvalidFeedbackOption reports whether err is an
// InvalidFeedbackOptionError.
func IsInvalidFeedbackOption(err error) bool {
	var e *InvalidFeedbackOptionError
	return errors.As(err, &e)
}

// checkMaxSelections enforces the cardinality constraint. Runs strictly
// after coercion so stale-option artifacts are resolved before counting.
// max <= 0 means unlimited.
func checkMaxSelections(selected, max int) error {
	if max > 0 && selected > max {
		return &SelectionLimitError{Selected: selected, Max: max}
	}
	return nil
}
