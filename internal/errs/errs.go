// Package errs defines custom error types and the wire envelopes the
// API uses for failures.
//
// The API intentionally has two distinct error shapes that clients rely
// on: not-found responses carry {"message": ...} while every other
// failure carries {"error": ...}. Both are kept here so no handler can
// improvise a third shape.
package errs
