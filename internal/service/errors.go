package service

import (
	"fmt"
	"strings"
)

// ValidationError indicates malformed inbound input (bad module labels,
// empty syllabus). Surfaced before any generation attempt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// GenerationError wraps a failure from the external completion service.
// The pipeline does not retry; the request simply fails.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ParseError indicates the model reply contained no extractable JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no valid JSON in model response: %v", e.Err)
	}
	return "no valid JSON in model response"
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError indicates the reply held JSON but it could not be shaped
// into a question paper even after defaulting.
type SchemaError struct {
	MissingFields []string
	Err           error
}

func (e *SchemaError) Error() string {
	if len(e.MissingFields) > 0 {
		return "response is missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return fmt.Sprintf("response does not match the question paper schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// BusinessRuleError indicates a structurally valid paper that violates
// the active test-type profile (question count, marks).
type BusinessRuleError struct {
	Rule     string
	Expected int
	Actual   int
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", e.Rule, e.Expected, e.Actual)
}
