package errors

import (
	"errors"
	"fmt"
)

// Kind classifies the failure modes reported by the underlying
// DEFLATE/INFLATE codec. This drives error handling and makes the raw
// status codes meaningful to callers and logs.
type Kind int

const (
	// KindStream indicates an invalid operation state or invalid
	// parameters, such as an unsupported window-bits value, a rejected
	// compression level, or a step issued on a finalized session.
	KindStream Kind = iota + 1

	// KindData indicates corrupt or invalid compressed input, such as a
	// bad header, a failed checksum, or a truncated member.
	KindData

	// KindMemory indicates the codec failed to allocate internal state.
	KindMemory

	// KindBuffer indicates output space stayed insufficient after growth
	// attempts were exhausted. Well-formed input never produces this under
	// a correct growth policy, so it usually means a malformed stream.
	KindBuffer

	// KindVersion indicates a codec library version mismatch.
	KindVersion

	// KindUnknown covers any status code not listed above. The raw code is
	// preserved on the error for diagnostics.
	KindUnknown
)

// String returns the string representation of the error kind.
// Useful for logging and error reporting.
func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindData:
		return "data"
	case KindMemory:
		return "memory"
	case KindBuffer:
		return "buffer"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Codec status codes, following zlib's numbering.
const (
	codeStreamError  int32 = -2
	codeDataError    int32 = -3
	codeMemoryError  int32 = -4
	codeBufferError  int32 = -5
	codeVersionError int32 = -6
)

// Fallback diagnostics used when the codec supplies no message of its own.
var fallbackMessages = map[Kind]string{
	KindStream:  "stream error",
	KindData:    "data error",
	KindMemory:  "insufficient memory",
	KindBuffer:  "buffer error",
	KindVersion: "incompatible version",
	KindUnknown: "unknown codec error",
}

// CodecError is a classified codec failure: a semantic kind, the raw
// status code it was derived from, and a human-readable message.
type CodecError struct {
	Kind    Kind
	Code    int32
	Message string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("[%v] %s (code %d)", e.Kind, e.Message, e.Code)
}

// IsRecoverable returns whether a different input or environment could
// make the failed operation succeed. This helps callers decide whether to
// report the failure against the input or against the system.
func (e *CodecError) IsRecoverable() bool {
	switch e.Kind {
	case KindStream:
		// Parameter errors are fixed by the caller, not by retrying.
		return false
	case KindData, KindBuffer:
		// Tied to the specific input; a different buffer may succeed.
		return true
	case KindMemory:
		// Allocation pressure might be temporary.
		return true
	case KindVersion:
		// Version mismatches require a rebuild.
		return false
	default:
		return false
	}
}

// Classify maps a raw codec status code, plus the codec's diagnostic
// message when it supplies one, to a typed CodecError. Pure: it only
// constructs the error value.
func Classify(code int32, msg string) *CodecError {
	var kind Kind

	switch code {
	case codeStreamError:
		kind = KindStream
	case codeDataError:
		kind = KindData
	case codeMemoryError:
		kind = KindMemory
	case codeBufferError:
		kind = KindBuffer
	case codeVersionError:
		kind = KindVersion
	default:
		kind = KindUnknown
	}

	if msg == "" {
		msg = fallbackMessages[kind]
	}

	return &CodecError{Kind: kind, Code: code, Message: msg}
}

// IsCodecError checks if a given error is of type CodecError.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}

// AsCodecError attempts to extract a CodecError from a given error.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
