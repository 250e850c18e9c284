// Package client contains the Waygate RPC client used by the CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the full Waygate surface: session calls (Login/RefreshToken/Logout),
//     profile and waypoint reads, progress reads and writes, admin
//     provisioning, and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to the sentinel
//     errors in internal/common.
//
// # Error Handling
//
// Callers match returned errors with errors.Is against the shared taxonomy:
// common.ErrUnauthorized, common.ErrWrongRole, common.ErrNotFound,
// common.ErrUpstreamUnavailable, and friends. Transport details never leak.
//
// Concurrency & Contexts
//
// All operations accept context.Context and honor cancellation/timeouts.
// Token rotation happens inside the interceptor; register OnTokensRefreshed
// to persist the new pair.
package client
