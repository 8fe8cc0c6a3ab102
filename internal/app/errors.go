package app

import (
	"errors"
	"fmt"
)

type ScheduleErrorCode string

const (
	ErrUnsupportedRegion     ScheduleErrorCode = "UNSUPPORTED_REGION"
	ErrNoFarmSelected        ScheduleErrorCode = "NO_FARM_SELECTED"
	ErrNoCandidates          ScheduleErrorCode = "NO_CANDIDATES"
	ErrDurationUnavailable   ScheduleErrorCode = "DURATION_UNAVAILABLE"
	ErrFeedbackTargetInvalid ScheduleErrorCode = "FEEDBACK_TARGET_INVALID"
)

// ScheduleError is a structured failure surfaced to callers as-is.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewScheduleError(code ScheduleErrorCode, format string, args ...any) *ScheduleError {
	return &ScheduleError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsScheduleError reports whether err wraps a ScheduleError with the given code.
func IsScheduleError(err error, code ScheduleErrorCode) bool {
	var se *ScheduleError
	return errors.As(err, &se) && se.Code == code
}
