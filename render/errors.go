package render

import "fmt"

// InvalidRecordError is returned when a classification record is missing
// fields required for rendering. Generation of that record aborts; the
// batch continues.
type InvalidRecordError struct {
	Code   string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid classification record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid classification record %s: %s", e.Code, e.Reason)
}

// RenderError wraps an unexpected formatting failure with the offending
// record code attached.
type RenderError struct {
	Code string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render record %s: %v", e.Code, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
