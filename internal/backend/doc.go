// Package backend provides an HTTP implementation of the domain.Backend
// interface used by shopadmin.
//
// The backend is the marketplace server that owns shopkeeper registrations.
// This package offers a concrete client for its admin endpoints:
//   - POST /signin      exchange admin credentials for a bearer token.
//   - GET  /unverified  list pending shopkeepers ({"data": [...]}).
//   - POST /accept      verify the given shopkeepers (bearer token).
//   - POST /delete      remove the given shopkeepers (bearer token).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses with a JSON body are returned as *APIError
// carrying the server's optional message. Requests that never complete, and
// bodies that cannot be decoded, are returned as *TransportError.
package backend
