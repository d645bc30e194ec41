// Package handler is the first entry point for business logic after
// the router.
//
// It binds requests, delegates to the service layer, and returns
// responses. It acts as the interface between the HTTP request and the
// core business logic.
package handler
