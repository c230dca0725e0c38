package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReportNotFound covers lookups by id or reference number that hit neither
// variant.
var ErrReportNotFound = errors.New("report not found")

// InvalidStatusError rejects a transition target that is not part of the
// variant's status vocabulary.
type InvalidStatusError struct {
	Status string
	Kind   string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%q is not a valid %s status", e.Status, e.Kind)
}

// ValidationError reports missing or invalid submission fields. Detected
// before any persistence attempt, so a failed validation never consumes a
// reference number.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// ReferenceAllocationError means the generator exhausted its retries against
// the unique index. The submission as a whole fails; resubmission is safe.
type ReferenceAllocationError struct {
	Prefix   string
	Attempts int
}

func (e *ReferenceAllocationError) Error() string {
	return fmt.Sprintf("could not allocate a unique %s reference number after %d attempts", e.Prefix, e.Attempts)
}

// UploadError marks a single attachment that was rejected or failed to store.
// It never fails the parent report, which is already committed by the time
// attachments run.
type UploadError struct {
	FileName string
	Reason   string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %s", e.FileName, e.Reason)
}

// StoreUnavailableError wraps a database failure on a write path. Read-only
// reference data degrades to static fallback lists instead of raising this.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("report store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
