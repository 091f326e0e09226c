// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDecode signals an ingest payload that does not match the user schema.
	ErrDecode = errors.New("decode error")
	// ErrTimeout signals that the request budget ran out before the report was computed.
	ErrTimeout = errors.New("request budget exceeded")
)

// DecodeError describes a malformed ingest payload.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDecode, e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
