package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromGRPCError converts a transport status error to our custom error.
// Errors that are not gRPC statuses are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	return &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}
}

// ActionRejected converts a server refusal of an outbound intent into a
// tagged error. The intent id is kept in meta for correlation.
func ActionRejected(intentID string, cause error) *Error {
	converted := FromGRPCError(cause)

	var customErr *Error
	if !As(converted, &customErr) {
		customErr = &Error{Code: CodeInternal, Message: GetMessage(converted)}
	}

	return (&Error{
		Code:    customErr.Code,
		Message: customErr.Message,
		Cause:   cause,
	}).WithKind(KindActionRejected).WithMeta("intent_id", intentID)
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
