// Package errors provides structured error handling for the character
// creation service.
//
// Errors carry a Code, a message, optional metadata, and an optional
// cause. Codes map onto HTTP statuses for the handler layer.
//
// Creating errors:
//
//	err := errors.NotFound("draft not found")
//	err := errors.InvalidArgumentf("unknown stat: %s", name)
//
// Adding metadata:
//
//	err := errors.FailedPrecondition("draft is not complete").
//	    WithMeta("missing_stages", missing)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get draft")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle missing draft
//	}
//
// Validation errors accumulate per-field messages through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	errors.ValidateRange("age", int(input.Age), 18, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with ids
// in metadata and wrap storage failures; the orchestrator validates
// inputs (InvalidArgument) and preconditions (FailedPrecondition) and
// wraps repository errors with business context; handlers render errors
// with RenderJSON. Soft signals such as negative point budgets are not
// errors at all - they travel as data to the completion tracker.
package errors
