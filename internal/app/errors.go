package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any input params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	err = errors.Cause(err)
	if ire, ok := err.(invalidReqErr); ok {
		return ire.IsInvalidRequest()
	}

	return false
}

// TooManyRequestsError is special error type returned when call rate limits are exceeded
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeding call rates
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	err = errors.Cause(err)
	if tmr, ok := err.(tooManyReqErr); ok {
		return tmr.IsTooManyRequests()
	}

	return false
}
