// Package client is the single chokepoint through which the CMS talks to its
// REST API.
//
// # Overview
//
// A Client resolves paths against a configured base URL, attaches the bearer
// token held by a tokenstore.Store when a call asks for authorization, sends
// JSON or multipart bodies and unwraps the {success, data, message} envelope
// the API answers with. Every request carries a fresh X-Request-ID.
//
// # Error Handling
//
// Failures are returned as *APIError. Its message is the server-provided
// message when there is one, otherwise "request failed with status <code>".
// The kind of failure is matched with errors.Is against the sentinels:
// ErrAuthentication (401/403), ErrNotFound (404), ErrValidation (other 4xx or
// success:false), ErrServer (5xx) and ErrNetwork (no response at all).
// An authentication failure on an authorized call clears the token store.
//
// # Concurrency & Contexts
//
// A Client is safe for concurrent use. There is no timeout unless one is set
// with WithTimeout; cancellation of ctx aborts the request with ErrNetwork.
package client
