package services

import "errors"

var (
	// ErrBackendUnavailable is the error returned by ActivityService when
	// the request to the activities API could not be completed
	ErrBackendUnavailable = errors.New("activities API could not be reached")
	// ErrUnexpectedStatus is the error returned by ActivityService when
	// the activities API answers a read with a non-2xx status
	ErrUnexpectedStatus = errors.New("activities API returned an unexpected status")
	// ErrMalformedResponse is the error returned by ActivityService when
	// the body returned by the activities API could not be decoded
	ErrMalformedResponse = errors.New("activities API returned a malformed response")
)
