// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
//
// Every response body is a [models.Envelope]; errors of any origin are
// classified through the apperr taxonomy before rendering, so internal
// details never leak into a response.
package http
