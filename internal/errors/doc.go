// Package errors provides the structured error type used across the GM
// service.
//
// An Error carries a Code, a message, an optional cause and metadata. The
// code decides the HTTP status (Code.HTTPStatus) and the gRPC status
// (Code.GRPCCode) the error is reported with.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("encounter not found")
//	err := errors.InvalidArgumentf("party size must be at least 1, got %d", size)
//
// Adding metadata:
//
//	err := errors.NotFound("encounter not found").
//	    WithMeta("encounter_id", id)
//
// Wrapping keeps the code and a copy of the meta of an *Error cause. Context
// cancellation maps to Canceled or DeadlineExceeded and anything else to
// Internal:
//
//	if _, err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get encounter")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("party_level", input.PartyLevel, 1, 20, vb)
//	errors.ValidateNonNegative("treasure_currency.gold", input.Gold, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The resulting InvalidArgument error lists the failing fields under the
// "validation_errors" metadata key.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound, AlreadyExists and Aborted for storage conflicts
//   - Wrap driver errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition for illegal status transitions
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Render errors as {"error": {"code", "message", "meta"}} with the
//     code's HTTP status
//   - gRPC servers install UnaryServerInterceptor to convert returned errors
package errors
