// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the deck service, translating HTTP concerns to deck drafting
// operations and domain errors to status codes.
package api
