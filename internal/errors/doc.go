// Package errors provides the structured error type used across the browser.
//
// Every failure surfaced to a screen carries one of a small set of codes:
//   - Network: transport failure or non-success HTTP status from the catalog
//   - Decode: malformed or unexpected response shape
//   - NotFound: the catalog has no such identifier
//   - InvalidArgument: bad input from a caller or bad configuration
//   - Canceled / DeadlineExceeded: the navigation was abandoned or timed out
//   - Internal: anything else
//
// Creating and wrapping:
//
//	err := errors.NotFoundf("pokemon %d not found", id)
//	return errors.Wrap(err, "failed to load detail")
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // render the 404 page
//	}
//
// Screens show errors.GetMessage(err) to the user; Error() keeps the full
// chain for logs.
package errors
