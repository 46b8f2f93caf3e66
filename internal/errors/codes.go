package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Kind classifies mirror failures independently of their code.
// It is carried in the "kind" meta key.
type Kind string

// Failure kinds raised by the mirror core
const (
	KindMalformedSnapshot Kind = "malformed_snapshot"
	KindUnknownDefinition Kind = "unknown_definition"
	KindStaleEvent        Kind = "stale_event"
	KindActionRejected    Kind = "action_rejected"
	KindIllegalTransition Kind = "illegal_transition"
)

const metaKind = "kind"
