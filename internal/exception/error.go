package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidInput returned when a scan is requested with no usable targets
var ErrInvalidInput = errors.New("invalid input: no targets provided")

// ErrProbeInvocation the probe primitive could not be started or executed
var ErrProbeInvocation = errors.New("probe invocation failed")

// ErrProbeUnreachable the probe ran but the host did not reply
var ErrProbeUnreachable = errors.New("host unreachable")

// ErrProbePanic a worker panicked while probing a single host
var ErrProbePanic = errors.New("probe panicked")
