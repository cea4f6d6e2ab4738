// Package client talks to the gophdocs backend.
//
// The Client interface is the contract the CLI depends on. GRPCClient
// implements it over gRPC: it attaches the access token of the current
// session to every call, renews an expired token once and retries, and maps
// status codes to the sentinel errors of this package (ErrUnavailable,
// ErrUnauthorized, ErrNotFound, ErrAlreadyExists, ErrInvalidArgument).
//
// InitDatabase opens the local SQLite file that keeps the session between
// runs and applies the embedded migrations.
package client
