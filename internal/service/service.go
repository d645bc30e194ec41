// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from the handler, applies resource semantics (paging
// normalization, partial updates, error mapping), and calls repository
// methods to interact with the data.
package service
