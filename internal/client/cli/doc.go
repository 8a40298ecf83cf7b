// Package cli provides the interactive sitecms admin console.
//
// It wires configuration, the local token database, the API services and a
// REPL. Public commands (articles, show, categories, contact, ...) work
// without a session. Admin commands run behind a fresh route guard each
// time: the session is checked against the API, a missing or rejected
// session sends the user to the login prompt, and an unreachable API still
// lets a holder of a local token through with a warning.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
