// Package errors provides the error taxonomy for the room mirror.
//
// Errors carry a Code, a user-facing Message, an optional Cause, and
// metadata. Mirror-specific failure classes are tagged with a Kind:
//
//	err := errors.MalformedSnapshot("room id is required").
//	    WithMeta("room_id", roomID)
//
//	if errors.IsKind(err, errors.KindMalformedSnapshot) {
//	    // previous mirror was retained
//	}
//
// Kinds map onto codes as follows:
//   - MalformedSnapshot: InvalidArgument; the snapshot is rejected and the
//     previous mirror retained
//   - UnknownDefinition: NotFound; logged, never returned from reconciliation
//   - StaleEvent: Aborted; reported only through output flags
//   - ActionRejected: whatever code the server sent, converted from a gRPC
//     status with FromGRPCError
//   - IllegalTransition: FailedPrecondition; an edit intent that is not legal
//     in the current edit state
//
// Config validation uses the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
package errors
