// Package errors provides structured error handling for the story engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("player not found")
//	err := errors.ContentDefectf("location %q does not exist", locationID)
//
// Adding metadata:
//
//	err := errors.NotFound("player not found").
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get player")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Code semantics in this repository
//
// CodeNotFound marks expected absences such as an unregistered player or a
// choice that is not part of the presented conversation. CodeContentDefect
// marks inconsistencies in static story data (an unknown location id, a
// dialogue with no fallback conversation); these are authoring bugs, logged
// as warnings and surfaced to the player as a generic "cannot do that"
// message. CodeUnavailable marks storage failures that the caller may retry.
// No error from this package is ever fatal to the process.
package errors
