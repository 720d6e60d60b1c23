// Package errors provides the structured error type shared by every layer of
// the progression engine.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("unknown class").
//	    WithMeta(errors.MetaReason, errors.ReasonInvalidClass)
//
// Wrapping keeps the original code, so a repository NotFound stays NotFound
// after the orchestrator adds context:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to get character")
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / AlreadyExists for record lookups
//   - Wrap storage failures; they surface as Internal
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Report activity guards with the progression codes (Busy, NotYetDue, ...)
//   - Never swallow Internal errors from a write
//
// Front-end layer:
//   - Check Code.Recoverable() to decide between a user message and an alert
//   - Convert with ToGRPCError when serving over gRPC
package errors
