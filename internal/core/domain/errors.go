package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent swap failures.
// These are distinct from infrastructure errors such as I/O failures.
var (
	// ErrNotFound indicates a requested object or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPathNotFound indicates an input path does not resolve to an existing file.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotImplemented indicates an optional capability is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsetOptional indicates an optional model attribute was read while absent.
	ErrUnsetOptional = errors.New("unset optional attribute")

	// Matching Errors.

	// ErrStructuralMismatch indicates the two models are not comparable
	// (different filtered surface counts, space counts or names).
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrMatchThreshold indicates the nearest candidate lies outside the
	// accepted tolerance.
	ErrMatchThreshold = errors.New("no match within tolerance")

	// ErrDuplicateMatch indicates a reference object was claimed twice
	// while strict one-to-one matching was requested.
	ErrDuplicateMatch = errors.New("reference object matched twice")

	// ErrEmptyCandidates indicates a best-match query ran over no candidates.
	ErrEmptyCandidates = errors.New("no candidates to match against")

	// Transplant Errors.

	// ErrInsertionFailed indicates the target document rejected a component.
	ErrInsertionFailed = errors.New("component insertion failed")
)

// InitError reports an absent optional attribute on a named object.
// It unwraps to ErrUnsetOptional.
type InitError struct {
	Object    string
	Attribute string
}

func (e *InitError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("init error for %s", e.Object)
	}
	return fmt.Sprintf("init error for %s: %s is not set", e.Object, e.Attribute)
}

func (e *InitError) Unwrap() error { return ErrUnsetOptional }

// MismatchError reports two models disagreeing on a structural property.
// It unwraps to ErrStructuralMismatch.
type MismatchError struct {
	What     string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatched %s: reference %s, actual %s", e.What, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrStructuralMismatch }

// ThresholdError reports a nearest match rejected by its tolerance.
// It unwraps to ErrMatchThreshold.
type ThresholdError struct {
	Object  string
	MinDiff float64
	Epsilon float64
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("no matching surface found for %s, min diff %g exceeds %g",
		e.Object, e.MinDiff, e.Epsilon)
}

func (e *ThresholdError) Unwrap() error { return ErrMatchThreshold }

// InsertionError reports a component the target document refused.
// It matches ErrInsertionFailed with errors.Is and exposes the cause.
type InsertionError struct {
	Object string
	Err    error
}

func (e *InsertionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("inserting %s: %v", e.Object, ErrInsertionFailed)
	}
	return fmt.Sprintf("inserting %s: %v: %v", e.Object, ErrInsertionFailed, e.Err)
}

func (e *InsertionError) Is(target error) bool { return target == ErrInsertionFailed }

func (e *InsertionError) Unwrap() error { return e.Err }
