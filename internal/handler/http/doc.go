// Package http implements the HTTP transport layer of the activity tracker.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Session authentication, request tracing, access logging, metrics,
// CORS, rate limiting and response compression are handled in this package
// before requests are delegated to the service layer. Every JSON answer uses
// the {success, data | error} envelope.
package http
