// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, request ids, tracing, and panic recovery, and
// the global error handler that produces this API's error envelopes.
package middleware
