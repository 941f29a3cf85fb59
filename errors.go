package multibase

import (
	"fmt"

	"github.com/bokysan/multibase/internal/util/enc"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownBase is returned when the leading character of the input (or a requested name) does
	// not map to any registered base
	ErrUnknownBase = errors.New("unknown base")
	// ErrInvalidBaseString is returned when the input is empty or the body cannot be decoded
	ErrInvalidBaseString = errors.New("invalid base string")
	// ErrContainerTooSmall is returned by EncodeInto / DecodeInto when the output buffer is too short
	ErrContainerTooSmall = enc.ErrContainerTooSmall
	// ErrMismatchedSizes is returned when a declared radix does not match its alphabet
	ErrMismatchedSizes = enc.ErrMismatchedSizes
)

// UnknownBaseError carries the code that could not be resolved
type UnknownBaseError struct {
	Code rune
}

func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownBase, e.Code)
}

// Is makes UnknownBaseError match ErrUnknownBase
func (e *UnknownBaseError) Is(target error) bool {
	return target == ErrUnknownBase
}

// InvalidBaseStringError is returned when the body of an encoded string is not valid for its base.
// The codec-level reason is available through errors.Unwrap.
type InvalidBaseStringError struct {
	Base Base
	Err  error
}

func (e *InvalidBaseStringError) Error() string {
	return fmt.Sprintf("%v for %v: %v", ErrInvalidBaseString, e.Base, e.Err)
}

// Is makes InvalidBaseStringError match ErrInvalidBaseString
func (e *InvalidBaseStringError) Is(target error) bool {
	return target == ErrInvalidBaseString
}

func (e *InvalidBaseStringError) Unwrap() error {
	return e.Err
}
